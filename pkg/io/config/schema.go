package config

import (
	"reflect"
	"time"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the configuration file. Every key is
// optional and durations are Go duration strings such as "3s".
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		FieldNameTag:              "mapstructure",
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper:                    mapDuration,
	}

	schema := reflector.Reflect(&Config{})
	schema.ID = ""
	schema.Version = ""
	schema.Title = "jobplan configuration"
	schema.Description = "JSON schema for " + FileName + ".yaml"
	schema.Required = nil

	return schema
}

func mapDuration(t reflect.Type) *jsonschema.Schema {
	if t != reflect.TypeFor[time.Duration]() {
		return nil
	}

	return &jsonschema.Schema{
		Type:    "string",
		Pattern: `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`,
	}
}
