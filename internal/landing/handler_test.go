package landing

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/bornholm/navbar/pkg/navbar"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

func newTestHandler() *Handler {
	return NewHandler([]Preset{
		{
			Name: "default",
			Props: navbar.NewProps(navbar.WithMenus(
				navbar.Menu{ID: 1, Link: "#", Name: "Home"},
				navbar.Menu{ID: 2, Link: "#about", Name: "About"},
			)),
		},
		{
			Name: "grid",
			Props: navbar.Merge(navbar.Props{
				DropdownItemClass: "border-b border-blue-500 col-span-1",
				ButtonText:        "Hello",
			}),
		},
	})
}

func postToggle(t *testing.T, handler http.Handler, preset string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, ToggleAction(preset), strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	return res
}

func TestServeIndex(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Navbar presets", doc.Find("title").Text(); e != g {
		t.Errorf("title: expected '%v', got '%v'", e, g)
	}

	sections := doc.Find("section#navbar")
	if e, g := 2, sections.Length(); e != g {
		t.Fatalf("sections: expected '%v', got '%v'", e, g)
	}

	toggles := doc.Find("[hx-post]")
	if e, g := 2, toggles.Length(); e != g {
		t.Fatalf("toggles: expected '%v', got '%v'", e, g)
	}

	instances := map[string]struct{}{}

	toggles.Each(func(idx int, toggle *goquery.Selection) {
		var vals map[string]string
		if err := json.Unmarshal([]byte(toggle.AttrOr("hx-vals", "")), &vals); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := "collapsed", vals["state"]; e != g {
			t.Errorf("toggles[%d] state: expected '%v', got '%v'", idx, e, g)
		}

		instances[vals["instance"]] = struct{}{}
	})

	if e, g := 2, len(instances); e != g {
		t.Errorf("distinct instances: expected '%v', got '%v'", e, g)
	}

	if e, g := "/navbars/grid/toggle", toggles.Eq(1).AttrOr("hx-post", ""); e != g {
		t.Errorf("toggles[1] hx-post: expected '%v', got '%v'", e, g)
	}

	if e, g := 2, sections.Eq(0).Find("nav#mainnav li").Length(); e != g {
		t.Errorf("first navbar items: expected '%v', got '%v'", e, g)
	}

	if e, g := "Hello", sections.Eq(1).Find("a[target=_blank] b").Text(); e != g {
		t.Errorf("second navbar button: expected '%v', got '%v'", e, g)
	}

	if !strings.Contains(doc.Find("footer").Text(), "2 navbar presets") {
		t.Errorf("footer: unexpected content '%s'", doc.Find("footer").Text())
	}
}

func TestServeToggle(t *testing.T) {
	handler := newTestHandler()
	instanceID := xid.New()

	type testCase struct {
		Preset             string
		Form               url.Values
		ExpectedStatusCode int
		Assert             func(t *testing.T, doc *goquery.Document)
	}

	testCases := []testCase{
		{
			Preset: "default",
			Form: url.Values{
				"instance": []string{instanceID.String()},
				"state":    []string{"collapsed"},
			},
			ExpectedStatusCode: http.StatusOK,
			Assert: func(t *testing.T, doc *goquery.Document) {
				content := doc.Find("#navbar-" + instanceID.String())
				if e, g := 1, content.Length(); e != g {
					t.Fatalf("content: expected '%v', got '%v'", e, g)
				}

				items := content.Find("li.border-b.border-blue-500")
				if e, g := 2, items.Length(); e != g {
					t.Fatalf("dropdown items: expected '%v', got '%v'", e, g)
				}

				if e, g := "About", items.Eq(1).Text(); e != g {
					t.Errorf("dropdown items[1]: expected '%v', got '%v'", e, g)
				}

				var vals map[string]string
				if err := json.Unmarshal([]byte(content.Find("[hx-post]").AttrOr("hx-vals", "")), &vals); err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}

				if e, g := "expanded", vals["state"]; e != g {
					t.Errorf("next posted state: expected '%v', got '%v'", e, g)
				}

				if e, g := instanceID.String(), vals["instance"]; e != g {
					t.Errorf("next posted instance: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Preset: "default",
			Form: url.Values{
				"instance": []string{instanceID.String()},
				"state":    []string{"expanded"},
			},
			ExpectedStatusCode: http.StatusOK,
			Assert: func(t *testing.T, doc *goquery.Document) {
				if e, g := 2, doc.Find("nav#mainnav li").Length(); e != g {
					t.Errorf("nav items: expected '%v', got '%v'", e, g)
				}

				if e, g := 0, doc.Find("li.border-b.border-blue-500").Length(); e != g {
					t.Errorf("dropdown items: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Preset: "grid",
			Form: url.Values{
				"instance": []string{instanceID.String()},
				"state":    []string{"collapsed"},
			},
			ExpectedStatusCode: http.StatusOK,
			Assert: func(t *testing.T, doc *goquery.Document) {
				panel := doc.Find("div.absolute.top-full")
				if e, g := 1, panel.Length(); e != g {
					t.Fatalf("dropdown panel: expected '%v', got '%v'", e, g)
				}

				if e, g := 0, panel.Find("li").Length(); e != g {
					t.Errorf("dropdown items: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Preset: "unknown",
			Form: url.Values{
				"instance": []string{instanceID.String()},
				"state":    []string{"collapsed"},
			},
			ExpectedStatusCode: http.StatusNotFound,
		},
		{
			Preset: "default",
			Form: url.Values{
				"instance": []string{instanceID.String()},
				"state":    []string{"open"},
			},
			ExpectedStatusCode: http.StatusBadRequest,
		},
		{
			Preset: "default",
			Form: url.Values{
				"instance": []string{"not-an-id"},
				"state":    []string{"collapsed"},
			},
			ExpectedStatusCode: http.StatusBadRequest,
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			res := postToggle(t, handler, tc.Preset, tc.Form)

			if e, g := tc.ExpectedStatusCode, res.Code; e != g {
				t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
			}

			if tc.Assert == nil {
				return
			}

			doc, err := goquery.NewDocumentFromReader(res.Body)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			tc.Assert(t, doc)
		})
	}
}

func TestToggleRoundTrip(t *testing.T) {
	handler := newTestHandler()
	instanceID := xid.New()

	state := "collapsed"

	for _, expected := range []int{2, 0, 2} {
		res := postToggle(t, handler, "default", url.Values{
			"instance": []string{instanceID.String()},
			"state":    []string{state},
		})

		if e, g := http.StatusOK, res.Code; e != g {
			t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
		}

		doc, err := goquery.NewDocumentFromReader(res.Body)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := expected, doc.Find("li.border-b.border-blue-500").Length(); e != g {
			t.Errorf("dropdown items: expected '%v', got '%v'", e, g)
		}

		var vals map[string]string
		if err := json.Unmarshal([]byte(doc.Find("[hx-post]").AttrOr("hx-vals", "")), &vals); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		state = vals["state"]
	}
}

func TestToggleMiddleware(t *testing.T) {
	called := 0

	handler := NewHandler(
		[]Preset{{Name: "default", Props: navbar.DefaultProps()}},
		WithToggleMiddleware(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called++
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			})
		}),
	)

	res := postToggle(t, handler, "default", url.Values{
		"instance": []string{xid.New().String()},
		"state":    []string{"collapsed"},
	})

	if e, g := http.StatusTooManyRequests, res.Code; e != g {
		t.Errorf("res.Code: expected '%v', got '%v'", e, g)
	}

	if e, g := 1, called; e != g {
		t.Errorf("called: expected '%v', got '%v'", e, g)
	}
}
