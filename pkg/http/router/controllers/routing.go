package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/poinav/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/navigate", api.navigate)
	group.GET("/attractions/nearby", api.nearbyAttractions)
}

// navigate
//
//	@Summary		directions from one attraction to another
//	@Description	turn-by-turn driving directions between two named attractions, names match ignoring case
//	@Tags			navigation
//	@Produce		json
//	@Param			start		query		string	true	"starting attraction"
//	@Param			destination	query		string	true	"destination attraction"
//	@Success		200			{object}	navigateResponse
//	@Failure		400			{object}	errorResponse
//	@Failure		404			{object}	errorResponse
//	@Failure		500			{object}	errorResponse
//	@Router			/navigate [get]
func (api *routingAPI) navigate(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	request := navigateRequest{
		Start:       query.Get("start"),
		Destination: query.Get("destination"),
	}

	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	route, err := api.routingService.Navigate(request.Start, request.Destination)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": newNavigateResponse(route)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// nearbyAttractions
//
//	@Summary		attractions near a coordinate
//	@Description	attractions within radius miles of a point, nearest first
//	@Tags			attractions
//	@Produce		json
//	@Param			lat		query		number	true	"latitude"
//	@Param			lon		query		number	true	"longitude"
//	@Param			radius	query		number	false	"search radius in miles, default 0.5"
//	@Success		200		{array}		nearbyAttraction
//	@Failure		400		{object}	errorResponse
//	@Router			/attractions/nearby [get]
func (api *routingAPI) nearbyAttractions(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearbyRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	if radius := query.Get("radius"); radius != "" {
		request.Radius, err = strconv.ParseFloat(radius, 64)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("radius must be a valid float"))
			return
		}
	}

	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	attractions, err := api.routingService.NearbyAttractions(request.Lat, request.Lon, request.Radius)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": newNearbyResponse(attractions)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
