package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ValidationError("Query Missing !!")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("Area Not Found")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Unavailable("Excel Not Loaded")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(InternalError("boom")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(stderrors.New("plain")))

	wrapped := fmt.Errorf("handler: %w", NotFound("Area Not Found"))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
}

func TestWrapKeepsCode(t *testing.T) {
	err := Wrap(ValidationError("bad"), "request rejected")
	assert.Equal(t, CodeValidationError, GetCode(err))
	assert.Equal(t, "request rejected: bad", err.Error())
	assert.Equal(t, "request rejected", PublicMessage(err))

	foreign := Wrapf(stderrors.New("disk"), "load %s", "data.xlsx")
	assert.Equal(t, CodeInternalError, GetCode(foreign))
	assert.Equal(t, "load data.xlsx", PublicMessage(foreign))

	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Nil(t, Wrapf(nil, "nothing %d", 1))
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "", PublicMessage(nil))
	assert.Equal(t, "plain", PublicMessage(stderrors.New("plain")))
	assert.Equal(t, "Area Not Found", PublicMessage(NotFound("Area Not Found")))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
}
