package order

import "github.com/invopop/jsonschema"

// ResponseSchema returns the JSON Schema (Draft 2020-12) of the Response
// document. The encoding/algorithm/entropy field names are a stable wire
// contract for downstream consumers; the schema lets them pin and validate
// it independently of this library's version.
func ResponseSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // inline the top-level Response definition
	}

	return reflector.Reflect(&Response{})
}
