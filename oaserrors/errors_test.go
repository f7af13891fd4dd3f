package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/file.json",
			Line:    42,
			Column:  10,
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "malformed input in /path/to/file.json at line 42, column 10: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "malformed input" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with line only", func(t *testing.T) {
		err := &ParseError{Line: 10}
		if err.Error() != "malformed input at line 10" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrMalformedInput only", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrMalformedInput) {
			t.Error("ParseError should match ErrMalformedInput")
		}
		if errors.Is(err, ErrShapeMismatch) {
			t.Error("ParseError should not match ErrShapeMismatch")
		}
	})

	t.Run("As extracts ParseError through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", &ParseError{Line: 3})
		var pe *ParseError
		if !errors.As(wrapped, &pe) {
			t.Fatal("errors.As should extract ParseError")
		}
		if pe.Line != 3 {
			t.Errorf("expected line 3, got %d", pe.Line)
		}
	})
}

func TestVariantError(t *testing.T) {
	t.Run("Error message lists candidates in order", func(t *testing.T) {
		err := &VariantError{Candidates: []CandidateError{
			{Variant: "OAS 2.0", Err: errors.New("missing swagger")},
			{Variant: "OAS 3.x", Err: errors.New("missing openapi")},
		}}
		want := "no document variant matched (OAS 2.0: missing swagger; OAS 3.x: missing openapi)"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message without candidates", func(t *testing.T) {
		err := &VariantError{}
		if err.Error() != "no document variant matched" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrNoVariantMatched but not candidate kinds", func(t *testing.T) {
		err := &VariantError{Candidates: []CandidateError{
			{Variant: "OAS 2.0", Err: &ShapeError{Message: "x"}},
		}}
		if !errors.Is(err, ErrNoVariantMatched) {
			t.Error("VariantError should match ErrNoVariantMatched")
		}
		if errors.Is(err, ErrShapeMismatch) {
			t.Error("VariantError should not match ErrShapeMismatch")
		}
	})

	t.Run("Candidate looks up by variant", func(t *testing.T) {
		reason := errors.New("nope")
		err := &VariantError{Candidates: []CandidateError{{Variant: "OAS 3.x", Err: reason}}}
		got, ok := err.Candidate("OAS 3.x")
		if !ok || got != reason { //nolint:errorlint // identity check
			t.Errorf("expected recorded reason, got %v, %v", got, ok)
		}
		if _, ok := err.Candidate("OAS 2.0"); ok {
			t.Error("unexpected candidate")
		}
	})
}

func TestShapeError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ShapeError{
			Path:     []string{"paths", "/pets", "get", "parameters", "[0]", "name"},
			Object:   "Parameter",
			Expected: "string",
			Actual:   "number",
		}
		want := "shape mismatch at paths./pets.get.parameters[0].name (Parameter): expected string, got number"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with message only", func(t *testing.T) {
		err := &ShapeError{Path: []string{"info", "title"}, Message: "required field missing"}
		if err.Error() != "shape mismatch at info.title: required field missing" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("WithPrefix prepends segments without mutating the original", func(t *testing.T) {
		orig := &ShapeError{Path: []string{"title"}}
		got := WithPrefix(WithPrefix(orig, "info"), "root")
		var se *ShapeError
		if !errors.As(got, &se) {
			t.Fatal("expected ShapeError")
		}
		if se.PathString() != "root.info.title" {
			t.Errorf("unexpected path: %s", se.PathString())
		}
		if orig.PathString() != "title" {
			t.Errorf("original mutated: %s", orig.PathString())
		}
	})

	t.Run("WithPrefix leaves other errors alone", func(t *testing.T) {
		other := errors.New("boom")
		//nolint:errorlint // identity check
		if WithPrefix(other, "x") != other {
			t.Error("non-shape error should pass through")
		}
	})

	t.Run("Is matches ErrShapeMismatch", func(t *testing.T) {
		if !errors.Is(&ShapeError{}, ErrShapeMismatch) {
			t.Error("ShapeError should match ErrShapeMismatch")
		}
	})
}

func TestCollisionError(t *testing.T) {
	err := &CollisionError{Object: "Info", Key: "title"}
	if err.Error() != `extension collision: Info extension "title" collides with a declared field` {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(fmt.Errorf("encode: %w", err), ErrExtensionCollision) {
		t.Error("CollisionError should match ErrExtensionCollision")
	}
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "extensions",
			Value:   "loose",
			Message: "unknown policy",
		}
		if err.Error() != "configuration error for extensions (value: loose): unknown policy" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		if !errors.Is(&ConfigError{}, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}
