// Package output serializes chart data and datasets to JSON.
package output

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/ukaji3/filechart-go/pkg/filechart/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToJSON serializes chart data to JSON.
func ToJSON(data *models.ChartData, pretty bool) ([]byte, error) {
	return marshal(data, pretty)
}

// DatasetToJSON serializes a normalized dataset to JSON.
func DatasetToJSON(ds *models.Dataset, pretty bool) ([]byte, error) {
	return marshal(ds, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
