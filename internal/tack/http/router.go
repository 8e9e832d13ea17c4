package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/service"
	"github.com/aussiebroadwan/tack/internal/tack/store"
	"github.com/aussiebroadwan/tack/pkg/httpx"
	"github.com/aussiebroadwan/tack/pkg/jwtx"
	"github.com/aussiebroadwan/tack/pkg/slogx"
	"github.com/aussiebroadwan/tack/pkg/tacksdk"

	_ "github.com/aussiebroadwan/tack/api/tack" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Pinger is a dependency the readiness probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	cookies      httpx.CookiePolicy
	origins      []string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	checks   map[string]Pinger
	Services *service.Services
}

func NewRouter(
	services *service.Services,
	st store.Store,
	cookies httpx.CookiePolicy,
	allowedOrigins []string,
	buildVersion string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     services.Tokens.Access,
		cookies:      cookies,
		origins:      allowedOrigins,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		checks:       map[string]Pinger{"database": st},
		Services:     services,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(r.origins),
	}

	return r
}

// AddReadinessCheck adds a dependency to /readyz, such as the Redis
// revocation store.
func (r *Router) AddReadinessCheck(name string, p Pinger) {
	r.checks[name] = p
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUser()
	r.registerWorkspaces()
	r.registerMembers()
	r.registerBoards()
	r.registerLists()
	r.registerCards()
	r.registerComments()
	r.registerInvites()
	r.registerMeta()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("/", http.HandlerFunc(routeNotFound))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Tack API
//	@version		0.1.0
//	@description	Multi-tenant project management: workspaces, boards, lists, cards and comments.
//	@description
//	@description				Every response is wrapped in an envelope with status, statusCode, message and data or errors.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/tack
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}". The accessToken cookie is accepted too.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with authentication and a per-user rate limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier, tacksdk.AccessCookieName, authFailure),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		Sessions: r.Services.Sessions,
		Cookies:  r.cookies,
	}

	// Credential endpoints - strict, keyed by IP and the submitted email
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister), httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email")))
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin), httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email")))
	r.Mux.Handle("POST /api/auth/forgot-password",
		httpx.Chain(http.HandlerFunc(h.HandleForgotPassword), httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email")))
	r.Mux.Handle("POST /api/auth/send-verification",
		httpx.Chain(http.HandlerFunc(h.HandleSendVerification), httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email")))
	r.Mux.Handle("POST /api/auth/verify-email",
		httpx.Chain(http.HandlerFunc(h.HandleVerifyEmail), httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email")))
	r.Mux.Handle("POST /api/auth/reset-password",
		httpx.Chain(http.HandlerFunc(h.HandleResetPassword), httpx.RateLimitByIP(httpx.StrictLimit)))

	// Token endpoints - moderate by IP
	r.Mux.Handle("POST /api/auth/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout), httpx.RateLimitByIP(httpx.ModerateLimit)))

	r.Mux.Handle("GET /api/auth/me", r.secured(h.HandleMe, httpx.LenientLimit))
}

func (r *Router) registerUser() {
	h := &AuthHandler{Sessions: r.Services.Sessions, Cookies: r.cookies}

	// Changing a password re-checks the current one, so it is strict
	r.Mux.Handle("POST /api/user/change-password", r.secured(h.HandleChangePassword, httpx.StrictLimit))
}

func (r *Router) registerWorkspaces() {
	h := &WorkspacesHandler{Workspaces: r.Services.Workspaces}

	r.Mux.Handle("POST /api/workspaces", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/workspaces", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /api/workspaces/{workspaceId}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PATCH /api/workspaces/{workspaceId}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/workspaces/{workspaceId}", r.secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerMembers() {
	h := &MembersHandler{
		Members: r.Services.Members,
		Invites: r.Services.Invites,
	}

	r.Mux.Handle("POST /api/workspaces/{workspaceId}/members/invite", r.secured(h.HandleInvite, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/workspaces/{workspaceId}/members/invites", r.secured(h.HandleListInvites, httpx.LenientLimit))
	r.Mux.Handle("GET /api/workspaces/{workspaceId}/members", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("PATCH /api/workspaces/{workspaceId}/members/{membershipId}", r.secured(h.HandleUpdateRole, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/workspaces/{workspaceId}/members/{membershipId}", r.secured(h.HandleRemove, httpx.ModerateLimit))
}

func (r *Router) registerBoards() {
	h := &BoardsHandler{Boards: r.Services.Boards}

	r.Mux.Handle("POST /api/workspaces/{workspaceId}/boards", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/workspaces/{workspaceId}/boards", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /api/workspaces/{workspaceId}/boards/{boardId}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PATCH /api/workspaces/{workspaceId}/boards/{boardId}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/workspaces/{workspaceId}/boards/{boardId}", r.secured(h.HandleDelete, httpx.ModerateLimit))

	r.Mux.Handle("GET /api/workspaces/{workspaceId}/boards/{boardId}/members", r.secured(h.HandleListMembers, httpx.LenientLimit))
	r.Mux.Handle("POST /api/workspaces/{workspaceId}/boards/{boardId}/members", r.secured(h.HandleAddMember, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/workspaces/{workspaceId}/boards/{boardId}/members/{userId}", r.secured(h.HandleRemoveMember, httpx.ModerateLimit))
}

func (r *Router) registerLists() {
	h := &ListsHandler{Lists: r.Services.Lists}

	r.Mux.Handle("POST /api/workspaces/{workspaceId}/boards/{boardId}/lists", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /api/workspaces/{workspaceId}/boards/{boardId}/lists/reorder", r.secured(h.HandleReorder, httpx.ModerateLimit))
}

func (r *Router) registerCards() {
	h := &CardsHandler{Cards: r.Services.Cards}

	r.Mux.Handle("POST /api/lists/{listId}/cards", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /api/cards/reorder", r.secured(h.HandleReorder, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/cards/{cardId}", r.secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PATCH /api/cards/{cardId}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/cards/{cardId}", r.secured(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /api/cards/{cardId}/assign", r.secured(h.HandleAssign, httpx.ModerateLimit))
}

func (r *Router) registerComments() {
	h := &CommentsHandler{Comments: r.Services.Comments}

	r.Mux.Handle("POST /api/cards/{cardId}/comments", r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /api/cards/{cardId}/comments", r.secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("PATCH /api/cards/{cardId}/comments/{commentId}", r.secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/cards/{cardId}/comments/{commentId}", r.secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{Invites: r.Services.Invites}

	// GET /verify - public, moderate by IP to slow token guessing
	r.Mux.Handle("GET /api/invites/verify/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleVerify), httpx.RateLimitByIP(httpx.ModerateLimit)))
	r.Mux.Handle("POST /api/invites/accept", r.secured(h.HandleAccept, httpx.ModerateLimit))
}

func (r *Router) registerMeta() {
	h := &MetaHandler{Meta: r.Services.Meta}
	r.Mux.Handle("GET /api/meta", httpx.Chain(h, httpx.RateLimitByIP(httpx.PublicLimit)))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.checks),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
