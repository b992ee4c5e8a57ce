package config

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

func withEnv(env map[string]string) {
	getEnv = func(key string) string {
		return env[key]
	}
}

func TestInterpolatedMap(t *testing.T) {
	type testCase struct {
		Path   string
		Env    map[string]string
		Assert func(t *testing.T, parsed InterpolatedMap)
	}

	testCases := []testCase{
		{
			Path: "testdata/environment/interpolated-map-1.yml",
			Env: map[string]string{
				"TEST_NAVBAR_CLASS": "top-0 bg-black",
				"TEST_HOME_LABEL":   "Home",
				"TEST_BASE_URL":     "https://example.com",
			},
			Assert: func(t *testing.T, parsed InterpolatedMap) {
				if e, g := "top-0 bg-black", parsed.Data["navbarClass"]; e != g {
					t.Errorf("parsed.Data[\"navbarClass\"]: expected '%v', got '%v'", e, g)
				}

				menus := parsed.Data["menus"].([]any)

				if e, g := "Home", menus[0].(map[string]any)["name"]; e != g {
					t.Errorf("menus[0].name: expected '%v', got '%v'", e, g)
				}

				if e, g := "https://example.com/about", menus[1].(map[string]any)["link"]; e != g {
					t.Errorf("menus[1].link: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Path: "testdata/environment/interpolated-map-1.yml",
			Env:  map[string]string{},
			Assert: func(t *testing.T, parsed InterpolatedMap) {
				if e, g := "", parsed.Data["navbarClass"]; e != g {
					t.Errorf("parsed.Data[\"navbarClass\"]: expected '%v', got '%v'", e, g)
				}

				if e, g := "Hello", parsed.Data["buttonText"]; e != g {
					t.Errorf("parsed.Data[\"buttonText\"]: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Path: "testdata/environment/interpolated-map-2.yml",
			Env: map[string]string{
				"BAR": "bar",
			},
			Assert: func(t *testing.T, parsed InterpolatedMap) {
				if e, g := "http://bar", parsed.Data["foo"]; e != g {
					t.Errorf("parsed.Data[\"foo\"]: expected '%v', got '%v'", e, g)
				}
			},
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			data, err := os.ReadFile(tc.Path)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			withEnv(tc.Env)

			var interpolatedMap InterpolatedMap

			if err := yaml.Unmarshal(data, &interpolatedMap); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if tc.Assert != nil {
				tc.Assert(t, interpolatedMap)
			}
		})
	}
}

func TestInterpolatedScalars(t *testing.T) {
	type scalars struct {
		Name     InterpolatedString    `yaml:"name"`
		Burst    InterpolatedInt       `yaml:"burst"`
		Rate     InterpolatedFloat     `yaml:"rate"`
		Duration *InterpolatedDuration `yaml:"duration"`
	}

	type testCase struct {
		Raw        string
		Env        map[string]string
		ShouldFail bool
		Assert     func(t *testing.T, parsed scalars)
	}

	testCases := []testCase{
		{
			Raw: `{ name: "${NAME:-grid}", burst: "${BURST}", rate: "${RATE}", duration: "${TTL}" }`,
			Env: map[string]string{
				"BURST": "5",
				"RATE":  "0.5",
				"TTL":   "30s",
			},
			Assert: func(t *testing.T, parsed scalars) {
				if e, g := "grid", string(parsed.Name); e != g {
					t.Errorf("parsed.Name: expected '%v', got '%v'", e, g)
				}

				if e, g := 5, int(parsed.Burst); e != g {
					t.Errorf("parsed.Burst: expected '%v', got '%v'", e, g)
				}

				if e, g := 0.5, float64(parsed.Rate); e != g {
					t.Errorf("parsed.Rate: expected '%v', got '%v'", e, g)
				}

				if e, g := 30*time.Second, time.Duration(*parsed.Duration); e != g {
					t.Errorf("parsed.Duration: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Raw: `{ duration: "1000" }`,
			Assert: func(t *testing.T, parsed scalars) {
				if e, g := time.Microsecond, time.Duration(*parsed.Duration); e != g {
					t.Errorf("parsed.Duration: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Raw:        `{ burst: "${BURST}" }`,
			Env:        map[string]string{"BURST": "many"},
			ShouldFail: true,
		},
		{
			Raw:        `{ duration: "soon" }`,
			ShouldFail: true,
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			withEnv(tc.Env)

			parsed := scalars{
				Duration: NewInterpolatedDuration(-1),
			}

			err := yaml.Unmarshal([]byte(tc.Raw), &parsed)
			if tc.ShouldFail {
				if err == nil {
					t.Fatalf("expected an error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if tc.Assert != nil {
				tc.Assert(t, parsed)
			}
		})
	}
}
