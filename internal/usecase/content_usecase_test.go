package usecase

import (
	"encoding/json"
	"testing"

	"portfolio/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    TechList
		wantErr bool
	}{
		{name: "list with blanks", body: `{"tech":[" Go ","","  ","Echo"]}`, want: TechList{"Go", "Echo"}},
		{name: "comma separated string", body: `{"tech":"a, ,b"}`, want: TechList{"a", "b"}},
		{name: "empty string", body: `{"tech":""}`, want: TechList{}},
		{name: "null", body: `{"tech":null}`, want: TechList{}},
		{name: "absent", body: `{}`, want: nil},
		{name: "number", body: `{"tech":42}`, wantErr: true},
		{name: "list of numbers", body: `{"tech":[1,2]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input ProjectInput
			err := json.Unmarshal([]byte(tt.body), &input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, input.Tech)
		})
	}
}

func TestParseTechList(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "Go, Echo ,GORM", want: []string{"Go", "Echo", "GORM"}},
		{raw: "a, ,b", want: []string{"a", "b"}},
		{raw: " , ,", want: []string{}},
		{raw: "", want: []string{}},
		{raw: "single", want: []string{"single"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.ParseTechList(tt.raw))
		})
	}
}
