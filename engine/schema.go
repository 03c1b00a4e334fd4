package engine

import (
	"github.com/invopop/jsonschema"
)

func reflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
}

// RequestSchema describes Request as a JSON Schema.
func RequestSchema() *jsonschema.Schema {
	return reflector().Reflect(&Request{})
}

// ResponseSchema describes Response as a JSON Schema.
func ResponseSchema() *jsonschema.Schema {
	return reflector().Reflect(&Response{})
}
