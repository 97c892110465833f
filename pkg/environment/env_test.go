package environment

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnv_UnmarshalYAML(t *testing.T) {
	type testcase struct {
		name string
		raw  string
		want Env
	}

	tests := [...]testcase{
		{name: "dev", raw: "env: dev", want: Development},
		{name: "prod", raw: "env: prod", want: Production},
		{name: "garbage", raw: "env: staging", want: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				Env Env `yaml:"env"`
			}
			require.NoError(t, yaml.Unmarshal([]byte(tt.raw), &got))
			require.Equal(t, tt.want, got.Env)
		})
	}
}
