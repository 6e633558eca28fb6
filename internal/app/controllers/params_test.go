package controllers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func paramContext(t *testing.T, query string, form url.Values) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest("POST", "/test?"+query, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	c.Request = req
	return c
}

func TestParamQueryWinsOverForm(t *testing.T) {
	form := url.Values{}
	form.Set("chapterID", "99")
	c := paramContext(t, "chapterID=7", form)

	v, err := requiredInt64(c, "chapterID")
	if err != nil {
		t.Fatalf("requiredInt64 returned error: %v", err)
	}
	if v != 7 {
		t.Errorf("expected query value 7 to win, got %d", v)
	}
}

func TestRequiredInt64Missing(t *testing.T) {
	c := paramContext(t, "", nil)

	_, err := requiredInt64(c, "chapterID")
	if err == nil {
		t.Fatal("expected an error for a missing parameter")
	}
	if !strings.Contains(err.Error(), "chapterID") {
		t.Errorf("error should name the parameter: %v", err)
	}
}

func TestOptionalInt64AbsentIsNil(t *testing.T) {
	c := paramContext(t, "", nil)

	v, err := optionalInt64(c, "jobs")
	if err != nil {
		t.Fatalf("optionalInt64 returned error: %v", err)
	}
	if v != nil {
		t.Errorf("expected nil for an absent parameter, got %d", *v)
	}
}

func TestOptionalFloat64Invalid(t *testing.T) {
	c := paramContext(t, "price=cheap", nil)

	_, err := optionalFloat64(c, "price")
	if err == nil {
		t.Fatal("expected an error for a non-numeric value")
	}
}

func TestOptionalBool(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"0", false},
	}

	for _, tc := range cases {
		c := paramContext(t, "active="+tc.raw, nil)
		v, err := optionalBool(c, "active")
		if err != nil {
			t.Fatalf("optionalBool(%q) returned error: %v", tc.raw, err)
		}
		if v == nil || *v != tc.want {
			t.Errorf("optionalBool(%q) = %v, want %v", tc.raw, v, tc.want)
		}
	}
}

func TestOptionalStringEmptyValueIsSupplied(t *testing.T) {
	// An explicitly supplied empty string is distinct from an absent
	// parameter.
	c := paramContext(t, "description=", nil)

	v := optionalString(c, "description")
	if v == nil {
		t.Fatal("expected a non-nil pointer for a supplied empty value")
	}
	if *v != "" {
		t.Errorf("expected empty string, got %q", *v)
	}
}
