package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/lintang-b-s/poinav/pkg"
	"github.com/lintang-b-s/poinav/pkg/concurrent"
	"github.com/lintang-b-s/poinav/pkg/engine"
	"github.com/lintang-b-s/poinav/pkg/engine/routing"
	log "github.com/lintang-b-s/poinav/pkg/logger"
	"github.com/lintang-b-s/poinav/pkg/util"
	"go.uber.org/zap"
)

var (
	mapFile    = flag.String("map", "./data/mapdata.txt", "map data file (.txt, .bz2 or .db)")
	queryFile  = flag.String("queries", "./data/queries.txt", "one query per line: start|destination")
	outFile    = flag.String("out", "batch_queries_result.csv", "result csv")
	numWorkers = flag.Int("workers", 8, "number of query workers")
)

type query struct {
	row         int
	start       string
	destination string
}

type queryResult struct {
	row          int
	result       pkg.NavResult
	instructions int
	distance     float64
	latency      time.Duration
	err          error
}

func main() {
	flag.Parse()
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	navEngine, err := engine.NewEngine(*mapFile, logger)
	if err != nil {
		logger.Fatal("failed to load map data", zap.Error(err))
	}
	navigator := navEngine.GetNavigator()

	queries, err := readQueries(*queryFile)
	if err != nil {
		logger.Fatal("failed to read queries", zap.Error(err))
	}

	navigate := func(ctx context.Context, q query) queryResult {
		before := time.Now()
		directions, res, err := navigator.Navigate(q.start, q.destination)
		return queryResult{
			row:          q.row,
			result:       res,
			instructions: len(directions),
			distance:     routing.TotalDistance(directions),
			latency:      time.Since(before),
			err:          err,
		}
	}

	workers := concurrent.NewWorkerPool[query, queryResult](*numWorkers, len(queries))
	workers.Start(context.Background(), navigate)
	for _, q := range queries {
		workers.AddJob(q)
	}
	workers.Close()
	go workers.Wait()

	results := make([]queryResult, 0, len(queries))
	for r := range workers.CollectResults() {
		results = append(results, r)
		if len(results)%1000 == 0 {
			logger.Sugar().Infof("done query %v", len(results))
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].row < results[j].row
	})

	if err := writeResults(*outFile, queries, results); err != nil {
		logger.Fatal("failed to write results", zap.Error(err))
	}

	var total time.Duration
	found := 0
	for _, r := range results {
		total += r.latency
		if r.result == pkg.NAV_SUCCESS {
			found++
		}
	}
	if len(results) > 0 {
		logger.Info("batch queries done", zap.Int("queries", len(results)), zap.Int("found", found),
			zap.Duration("avgLatency", total/time.Duration(len(results))))
	}
}

func readQueries(filename string) ([]query, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	queries := make([]query, 0)
	lineNum := 0
	for {
		line, err := util.ReadLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		lineNum++
		if strings.TrimSpace(line) == "" {
			continue
		}
		start, dest, ok := strings.Cut(line, "|")
		if !ok {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "line %d: expected start|destination", lineNum)
		}
		queries = append(queries, query{row: len(queries), start: strings.TrimSpace(start),
			destination: strings.TrimSpace(dest)})
	}
	return queries, nil
}

func writeResults(filename string, queries []query, results []queryResult) error {
	fout, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fout.Close()

	w := bufio.NewWriter(fout)
	fmt.Fprintln(w, "start,destination,result,instructions,distance_miles,latency_us")
	for _, r := range results {
		q := queries[r.row]
		result := r.result.String()
		if r.err != nil {
			result = "error"
		}
		fmt.Fprintf(w, "%q,%q,%s,%d,%.4f,%d\n", q.start, q.destination, result, r.instructions, r.distance,
			r.latency.Microseconds())
	}
	return w.Flush()
}
