package rbx_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/rbxweb/rbxweb/pkg/rbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	apiErr := &rbx.APIError{
		Code:    3,
		Message: "The user id is invalid.",
	}

	assert.Equal(t, "The user id is invalid. (code: 3)", apiErr.Error())
}

func TestResponseError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *rbx.ResponseError
		expected string
	}{
		{
			name:     "no errors",
			err:      &rbx.ResponseError{StatusCode: 500},
			expected: "HTTP 500",
		},
		{
			name: "single error",
			err: &rbx.ResponseError{
				StatusCode: 404,
				Errors: []rbx.APIError{
					{Code: 3, Message: "The user id is invalid."},
				},
			},
			expected: "HTTP 404: The user id is invalid. (code: 3)",
		},
		{
			name: "multiple errors",
			err: &rbx.ResponseError{
				StatusCode: 400,
				Errors: []rbx.APIError{
					{Code: 1, Message: "first"},
					{Code: 2, Message: "second"},
				},
			},
			expected: "HTTP 400: multiple errors:",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Contains(t, testCase.err.Error(), testCase.expected)
		})
	}
}

func TestResponseError_FirstError(t *testing.T) {
	t.Parallel()

	empty := &rbx.ResponseError{}
	assert.Nil(t, empty.FirstError())

	populated := &rbx.ResponseError{
		Errors: []rbx.APIError{{Code: 4, Message: "flood"}},
	}
	require.NotNil(t, populated.FirstError())
	assert.Equal(t, 4, populated.FirstError().Code)
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	respErr := func(status int) error {
		return fmt.Errorf("request failed: %w", &rbx.ResponseError{StatusCode: status})
	}

	assert.True(t, rbx.IsNotFound(respErr(http.StatusNotFound)))
	assert.False(t, rbx.IsNotFound(respErr(http.StatusBadRequest)))

	assert.True(t, rbx.IsUnauthorized(respErr(http.StatusUnauthorized)))
	assert.True(t, rbx.IsForbidden(respErr(http.StatusForbidden)))
	assert.True(t, rbx.IsTooManyRequests(respErr(http.StatusTooManyRequests)))

	assert.False(t, rbx.IsNotFound(fmt.Errorf("plain error")))
	assert.False(t, rbx.IsNotFound(nil))
}

func TestIsChallengeRequired(t *testing.T) {
	t.Parallel()

	challenge := &rbx.ResponseError{
		StatusCode: http.StatusForbidden,
		Errors:     []rbx.APIError{{Code: 0, Message: "Challenge is required to authorize the request"}},
	}
	assert.True(t, rbx.IsChallengeRequired(challenge))

	tokenFailure := &rbx.ResponseError{
		StatusCode: http.StatusForbidden,
		Errors:     []rbx.APIError{{Code: 3, Message: "Token Validation Failed"}},
	}
	assert.False(t, rbx.IsChallengeRequired(tokenFailure))
}

func TestParseResponseError(t *testing.T) {
	t.Parallel()

	body := []byte(`{"errors":[{"code":3,"message":"The user id is invalid.","userFacingMessage":"Something went wrong"}]}`)

	errResp, err := rbx.ParseResponseError(404, body)
	require.NoError(t, err)
	assert.Equal(t, 404, errResp.StatusCode)
	require.Len(t, errResp.Errors, 1)
	assert.Equal(t, 3, errResp.Errors[0].Code)
	assert.Equal(t, "Something went wrong", errResp.Errors[0].UserFacingMessage)
}

func TestParseResponseError_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := rbx.ParseResponseError(500, []byte("<html>Bad Gateway</html>"))
	require.Error(t, err)
}
