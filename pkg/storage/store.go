package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/mapparser"
)

// Store keeps street segments and their attractions in sqlite. coordinates are stored as text so the
// exact source text survives a round trip.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) InitSchema(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS street_segments (
	id INTEGER PRIMARY KEY,
	street_name TEXT NOT NULL,
	start_lat TEXT NOT NULL,
	start_lon TEXT NOT NULL,
	end_lat TEXT NOT NULL,
	end_lon TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS attractions (
	segment_id INTEGER NOT NULL,
	seq INTEGER NOT NULL,
	name TEXT NOT NULL,
	lat TEXT NOT NULL,
	lon TEXT NOT NULL,
	PRIMARY KEY (segment_id, seq)
);
`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// SaveSegments replaces the stored map with segments, in one transaction.
func (s *Store) SaveSegments(ctx context.Context, segments []datastructure.StreetSegment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM attractions`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM street_segments`); err != nil {
		return err
	}

	segStmt, err := tx.PrepareContext(ctx, `
INSERT INTO street_segments (id, street_name, start_lat, start_lon, end_lat, end_lon)
VALUES (?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer segStmt.Close()

	attStmt, err := tx.PrepareContext(ctx, `
INSERT INTO attractions (segment_id, seq, name, lat, lon)
VALUES (?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer attStmt.Close()

	for i, seg := range segments {
		start, end := seg.GetStart(), seg.GetEnd()
		if _, err := segStmt.ExecContext(ctx, i, seg.StreetName,
			start.LatText, start.LonText, end.LatText, end.LonText); err != nil {
			return err
		}
		for j, att := range seg.Attractions {
			if _, err := attStmt.ExecContext(ctx, i, j, att.Name,
				att.Coord.LatText, att.Coord.LonText); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (s *Store) CountSegments(ctx context.Context) (int, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT COUNT(*)
FROM street_segments
`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// SegmentLoader is the stored map, read back in insertion order.
type SegmentLoader struct {
	mapparser.SliceLoader
}

func (s *Store) LoadSegments(ctx context.Context) (*SegmentLoader, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, street_name, start_lat, start_lon, end_lat, end_lon
FROM street_segments
ORDER BY id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	segments := make([]datastructure.StreetSegment, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var (
			id                                 int64
			name                               string
			startLat, startLon, endLat, endLon string
		)
		if err := rows.Scan(&id, &name, &startLat, &startLon, &endLat, &endLon); err != nil {
			return nil, err
		}
		start, err := datastructure.NewGeoCoord(startLat, startLon)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", id, err)
		}
		end, err := datastructure.NewGeoCoord(endLat, endLon)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", id, err)
		}
		index[id] = len(segments)
		segments = append(segments, datastructure.NewStreetSegment(name, start, end))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.loadAttractions(ctx, segments, index); err != nil {
		return nil, err
	}

	return &SegmentLoader{SliceLoader: segments}, nil
}

func (s *Store) loadAttractions(ctx context.Context, segments []datastructure.StreetSegment, index map[int64]int) error {
	rows, err := s.db.QueryContext(ctx, `
SELECT segment_id, name, lat, lon
FROM attractions
ORDER BY segment_id, seq
`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			segmentID      int64
			name, lat, lon string
		)
		if err := rows.Scan(&segmentID, &name, &lat, &lon); err != nil {
			return err
		}
		i, ok := index[segmentID]
		if !ok {
			return errors.New("attraction references a missing segment")
		}
		coord, err := datastructure.NewGeoCoord(lat, lon)
		if err != nil {
			return fmt.Errorf("attraction %q: %w", name, err)
		}
		segments[i].Attractions = append(segments[i].Attractions, datastructure.NewAttraction(name, coord))
	}
	return rows.Err()
}
