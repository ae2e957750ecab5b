package plan

import "github.com/Alexander-Nasuta/FAIRWork-crf-cp-solver/pkg/jsonutil"

// requestSchema is the JSON schema every request body is validated against
// before decoding. Validation failures surface as 400 at the HTTP boundary.
const requestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": [
    "start_time_stamp",
    "order-data",
    "geometry_line_mapping",
    "throughput_mapping",
    "human_factor",
    "availabilities",
    "hardcoded_allocation"
  ],
  "properties": {
    "start_time_stamp": {"type": "number"},
    "order-data": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["order", "geometry", "amount", "deadline", "mold", "priority"],
        "properties": {
          "order": {"type": "string"},
          "geometry": {"type": "string"},
          "amount": {"type": "integer"},
          "deadline": {"type": "number"},
          "mold": {"type": "integer"},
          "priority": {"type": "boolean"}
        }
      }
    },
    "geometry_line_mapping": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["geometry", "main_line", "alternative_lines", "number_of_workers"],
        "properties": {
          "geometry": {"type": "string"},
          "main_line": {"type": "integer"},
          "alternative_lines": {"type": "array", "items": {"type": "integer"}},
          "number_of_workers": {"type": "integer"}
        }
      }
    },
    "throughput_mapping": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["line", "geometry", "throughput"],
        "properties": {
          "line": {"type": "string"},
          "geometry": {"type": "string"},
          "throughput": {"type": "integer"}
        }
      }
    },
    "human_factor": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["worker", "geometry", "experience", "preference", "resilience", "medical_condition"],
        "properties": {
          "worker": {"type": "string"},
          "geometry": {"type": "string"},
          "experience": {"type": "number"},
          "preference": {"type": "number"},
          "resilience": {"type": "number"},
          "medical_condition": {"type": "boolean"}
        }
      }
    },
    "availabilities": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["worker", "from_timestamp", "end_timestamp"],
        "properties": {
          "worker": {"type": "string"},
          "from_timestamp": {"type": "number"},
          "end_timestamp": {"type": "number"},
          "date": {"type": "string"}
        }
      }
    },
    "hardcoded_allocation": {"type": "array"}
  }
}`

// compiledRequestSchema is built once at startup; the schema is a constant
// so compilation cannot fail at runtime
var compiledRequestSchema = mustCompileSchema()

func mustCompileSchema() *jsonutil.Schema {
	s, err := jsonutil.CompileSchema([]byte(requestSchema))
	if err != nil {
		panic(err)
	}
	return s
}

// ValidateRequest checks a raw request body against the request schema.
func ValidateRequest(body []byte) (*jsonutil.ValidationResult, error) {
	return compiledRequestSchema.Validate(body)
}
