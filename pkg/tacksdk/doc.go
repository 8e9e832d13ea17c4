/*
Package tacksdk is a Go client for the tack project management API.

# SDKClient vs Session

SDKClient covers the public endpoints: registration, login, email
verification, password reset, invite previews, meta and health. Logging in
or verifying an email returns a Session, which covers everything that needs
an access token:

	client := tacksdk.NewSDKClient("http://localhost:8080")

	_, err := client.Register(ctx, tacksdk.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Passw0rd!",
	})

	// The code arrives by email.
	session, err := client.VerifyEmail(ctx, "alice@example.com", "A1B2C3")

	ws, err := session.CreateWorkspace(ctx, "Platform")
	board, err := session.CreateBoard(ctx, ws.ID, tacksdk.CreateBoardRequest{Name: "Roadmap"})

# Tokens

The access token is returned in the response body; the refresh token is read
from the refreshToken cookie the server sets. A Session refreshes the access
token shortly before it expires. Every refresh rotates the refresh token and
the previous one stops working, so share a Session between goroutines rather
than copying its tokens.

# Errors

Non-success responses are returned as *APIError carrying the status code,
the server's message and any per-field validation errors. Login returns
ErrVerificationRequired for accounts that have not confirmed their email.
*/
package tacksdk
