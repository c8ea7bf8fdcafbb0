package session

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		want   string
	}{
		{name: "valid", header: "Bearer abc.def", want: "abc.def"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "extra spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "empty", header: "", want: ""},
		{name: "no token", header: "Bearer", want: ""},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", want: ""},
		{name: "too many parts", header: "Bearer a b", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BearerToken(tc.header))
		})
	}
}

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	req.Header.Set(HeaderUserID, " 42 ")
	req.Header.Set(HeaderRelationshipID, "7")

	s := FromRequest(req)
	assert.Equal(t, "42", s.UserID)
	assert.Equal(t, "tok-1", s.Token)
	assert.Equal(t, "7", s.RelationshipID)
	assert.False(t, s.IsAnonymous())
	assert.Equal(t, "Bearer tok-1", s.AuthorizationHeader())

	s = FromRequest(httptest.NewRequest("GET", "/dashboard", nil))
	assert.True(t, s.IsAnonymous())
	assert.Empty(t, s.AuthorizationHeader())
}

func TestWithRelationship_DoesNotMutate(t *testing.T) {
	s := New("1", "t")
	focused := s.WithRelationship("rel-9")
	assert.Empty(t, s.RelationshipID)
	assert.Equal(t, "rel-9", focused.RelationshipID)
	assert.Equal(t, "1", focused.UserID)
}

func TestContext(t *testing.T) {
	assert.Equal(t, Anonymous(), FromContext(context.Background()))

	s := New("5", "tok")
	ctx := NewContext(context.Background(), s)
	assert.Equal(t, s, FromContext(ctx))
}
