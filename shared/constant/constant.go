package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Store keys for the five club collections plus the session document. These
// mirror the browser local-storage keys of the original club application.
const (
	StoreKeyUsers         = "club_users"
	StoreKeyEvents        = "club_events"
	StoreKeyBookings      = "club_bookings"
	StoreKeySettings      = "club_settings"
	StoreKeyNotifications = "club_notifications"
	StoreKeyCurrentUser   = "club_current_user"
)

const (
	EventStatusActive = "active"

	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"

	PaymentStatusPaid = "paid"

	// NotificationAudienceAll addresses a notification to every user. The
	// broadcast is resolved at read time, no per-user fan-out rows exist.
	NotificationAudienceAll = "all"
)

const (
	RequestParamID   = "id"
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelStoreScopeName      = "store"
	OtelS3ScopeName         = "s3"

	OtelStoreKeyAttributeKey = "store.key"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderContentType   = "Content-Type"
)

const (
	ContentTypeJSON = "application/json"
	FormFile        = "file"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
