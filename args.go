package irailmcp

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SearchStationsArgs are the arguments of the search_stations tool.
type SearchStationsArgs struct {
	Query string `json:"query" validate:"required"`
	Lang  string `json:"lang" validate:"omitempty,oneof=en nl fr de it"`
}

// LiveboardArgs are the arguments of the get_liveboard tool.
type LiveboardArgs struct {
	Station string `json:"station" validate:"required"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Arrival bool   `json:"arrival"`
	Lang    string `json:"lang" validate:"omitempty,oneof=en nl fr de it"`
}

// ConnectionsArgs are the arguments of the find_connections tool.
type ConnectionsArgs struct {
	FromStation string `json:"from_station" validate:"required"`
	ToStation   string `json:"to_station" validate:"required"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ArrivalTime bool   `json:"arrival_time"`
	Lang        string `json:"lang" validate:"omitempty,oneof=en nl fr de it"`
}

// TrainInfoArgs are the arguments of the get_train_info tool.
type TrainInfoArgs struct {
	TrainID string `json:"train_id" validate:"required"`
	Date    string `json:"date"`
	Lang    string `json:"lang" validate:"omitempty,oneof=en nl fr de it"`
}

// DisturbancesArgs are the arguments of the get_disturbances tool.
type DisturbancesArgs struct {
	Lang string `json:"lang" validate:"omitempty,oneof=en nl fr de it"`
}

var argValidator = newArgValidator()

// newArgValidator reports violations under the json parameter names the
// assistant actually sees.
func newArgValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateArgs(args any) error {
	err := argValidator.Struct(args)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		if f.Tag() == "required" {
			return fmt.Errorf("missing required parameter %q", f.Field())
		}
		return fmt.Errorf("invalid value %q for parameter %q", fmt.Sprint(f.Value()), f.Field())
	}
	return err
}

// Train ids look like "IC538", "p 8008" or "BE.NMBS.IC538".
var trainIDPattern = regexp.MustCompile(`^(?i:BE\.NMBS\.)?([A-Za-z]{1,4}) ?([0-9]{1,5})$`)

// normalizeTrainID validates a train id and returns its bare upper-case
// form, the shape the /vehicle/ endpoint accepts for any input variant.
func normalizeTrainID(id string) (string, error) {
	m := trainIDPattern.FindStringSubmatch(strings.TrimSpace(id))
	if m == nil {
		return "", fmt.Errorf("train id %q does not look like a train number (expected e.g. IC538 or BE.NMBS.IC538)", id)
	}
	return strings.ToUpper(m[1]) + m[2], nil
}
