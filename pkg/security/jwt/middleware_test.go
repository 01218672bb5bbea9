package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp(codec *Codec) *fiber.App {
	app := fiber.New()
	app.Get("/me", NewAuthMiddleware(codec), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": c.Locals("userId"),
			"email":  c.Locals("userEmail"),
		})
	})
	return app
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	codec := testCodec()
	app := protectedApp(codec)

	token, err := codec.Mint("user-1", "a@x.com", DomainAccess)
	require.NoError(t, err)

	for _, header := range []string{"Bearer " + token, token} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	codec := testCodec()
	app := protectedApp(codec)

	refresh, err := codec.Mint("user-1", "a@x.com", DomainRefresh)
	require.NoError(t, err)

	expiredCodec := NewCodec("surfconnect-test",
		DomainConfig{Secret: "access-secret", TTL: -time.Minute},
		DomainConfig{Secret: "refresh-secret", TTL: time.Hour},
	)
	expired, err := expiredCodec.Mint("user-1", "a@x.com", DomainAccess)
	require.NoError(t, err)

	cases := map[string]string{
		"missing header":     "",
		"garbage token":      "Bearer garbage",
		"refresh token used": "Bearer " + refresh,
		"expired token":      "Bearer " + expired,
	}
	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err, name)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, name)
	}
}
