package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/poinav/pkg/util"
	"go.uber.org/zap"
)

type envelope map[string]any

func (api *routingAPI) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func (api *routingAPI) logError(r *http.Request, err error) {
	api.log.Error("request failed", zap.String("method", r.Method),
		zap.String("uri", r.URL.RequestURI()), zap.Error(err))
}

func (api *routingAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	env := envelope{"error": map[string]string{
		"code":    http.StatusText(status),
		"message": message,
	}}
	if err := api.writeJSON(w, status, env, nil); err != nil {
		api.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *routingAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.logError(r, err)
	api.errorResponse(w, r, http.StatusInternalServerError, util.MessageInternalServerError)
}

func (api *routingAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, err.Error())
}

func (api *routingAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *routingAPI) ConflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusConflict, err.Error())
}

// getStatusCode writes the response matching the code of a util.Error. anything else is a 500.
func (api *routingAPI) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	var ierr *util.Error
	if !errors.As(err, &ierr) {
		api.ServerErrorResponse(w, r, err)
		return
	}

	switch ierr.Code() {
	case util.ErrNotFound:
		api.NotFoundResponse(w, r, err)
	case util.ErrBadParamInput:
		api.BadRequestResponse(w, r, err)
	case util.ErrConflict:
		api.ConflictResponse(w, r, err)
	default:
		api.ServerErrorResponse(w, r, err)
	}
}

// validateRequest returns nil or an error listing every failed field in english.
func validateRequest(request any) error {
	validate := validator.New()
	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	vv := translateError(err, trans)
	vvString := []string{}
	for _, v := range vv {
		vvString = append(vvString, v.Error())
	}
	return fmt.Errorf("validation error: %v", vvString)
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		translatedErr := errors.New(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
