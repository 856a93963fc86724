package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestParsedResumeSchema_ValidJSON(t *testing.T) {
	var v interface{}
	err := json.Unmarshal([]byte(ParsedResume()), &v)
	require.NoError(t, err, "embedded schema should be valid JSON")
}

func TestParsedResumeSchema_Compiles(t *testing.T) {
	_, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(ParsedResume()))
	require.NoError(t, err, "embedded schema should compile as a JSON Schema")
}

func TestParsedResumeSchema_AcceptsWellFormedPayload(t *testing.T) {
	payload := `{
		"name": "John Smith",
		"email": "john@smith.dev",
		"phone": null,
		"location": "Austin, TX",
		"summary": null,
		"experience": [
			{
				"job_title": "Backend Engineer",
				"company": "Initech",
				"start_date": "2019",
				"end_date": "Present",
				"responsibilities": ["Built billing APIs in Go"]
			}
		],
		"education": [
			{"degree": "B.S. Computer Science", "institution": "University of Texas", "year": "2018"}
		],
		"skills": {
			"programming_languages": ["Go"],
			"frameworks_and_libraries": [],
			"cloud_and_infra": ["AWS"],
			"databases": [],
			"dev_tools": ["Git"]
		},
		"role_level": "Mid-level",
		"primary_role": "Backend"
	}`

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(ParsedResume()),
		gojsonschema.NewStringLoader(payload),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid(), "errors: %v", result.Errors())
}

func TestParsedResumeSchema_RejectsBadPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "missing skills",
			payload: `{"experience": [], "education": []}`,
		},
		{
			name: "experience entry without job title",
			payload: `{
				"experience": [{"company": "Initech"}],
				"education": [],
				"skills": {
					"programming_languages": [],
					"frameworks_and_libraries": [],
					"cloud_and_infra": [],
					"databases": [],
					"dev_tools": []
				}
			}`,
		},
		{
			name: "unknown role level",
			payload: `{
				"experience": [],
				"education": [],
				"skills": {
					"programming_languages": [],
					"frameworks_and_libraries": [],
					"cloud_and_infra": [],
					"databases": [],
					"dev_tools": []
				},
				"role_level": "Principal"
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := gojsonschema.Validate(
				gojsonschema.NewStringLoader(ParsedResume()),
				gojsonschema.NewStringLoader(tt.payload),
			)
			require.NoError(t, err)
			assert.False(t, result.Valid())
		})
	}
}
