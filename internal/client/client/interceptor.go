package client

import (
	"context"
	"io"
	"net/http"

	"github.com/dmitrijs2005/adminclient/internal/common"
)

// maxErrorBody caps how much of an error response is kept in ResponseError.
const maxErrorBody = 4 << 10

// Invoker performs the actual round trip; (*http.Client).Do in production.
type Invoker func(req *http.Request) (*http.Response, error)

// authInterceptor wraps every request: it attaches the bearer token before
// invoke and inspects the outcome after it. On success the response is
// returned untouched. Any failure comes back as an error with the response
// body already closed; a 401 additionally ends the session first.
func (c *HTTPClient) authInterceptor(req *http.Request, invoke Invoker) (*http.Response, error) {
	c.injectToken(req)

	resp, err := invoke(req)
	if err != nil {
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		return nil, &Error{Method: req.Method, URL: req.URL.Redacted(), Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	rerr := &ResponseError{
		StatusCode: resp.StatusCode,
		Method:     req.Method,
		URL:        req.URL.Redacted(),
		Body:       string(body),
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(req.Context())
	}

	return nil, rerr
}

// injectToken sets the Authorization header when the session holds a token
// and leaves the request untouched otherwise.
func (c *HTTPClient) injectToken(req *http.Request) {
	if c.session == nil {
		return
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerValue(token))
	}
}

// handleUnauthorized logs out, tells the user and navigates to the login
// view. 401s that arrive while a run is in progress join that run.
func (c *HTTPClient) handleUnauthorized(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	c.unauthorized.Do("unauthorized", func() (any, error) {
		c.log.Warn(ctx, "server rejected the session, logging out")

		if c.session != nil {
			if err := c.session.Logout(ctx); err != nil {
				c.log.Error(ctx, "logout after 401 failed", "error", err)
			}
		}
		if c.notifier != nil {
			c.notifier.Notify(ctx, common.SessionExpiredMessage)
		}
		if c.navigator != nil {
			c.navigator.Navigate(ctx, common.LoginRoute)
		}
		return nil, nil
	})
}
