package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// ServerHeader identifies the feed server in responses.
var ServerHeader = "Go-Patro/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Patro"
	AppID             = "com.github.tartampluch.go-patro"
	CmdName           = "go-patro"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the log directory.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Commands, Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagSystem       = "system"
	FlagFirstDay     = "first-day"
	FlagJSON         = "json"
	FlagCounterpart  = "counterpart"
	FlagRows         = "rows"
	FlagMonths       = "months"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescSystem   = "Calendar system of the displayed month (AD or BS)"
	FlagDescFirstDay = "First day of the week"
	FlagDescJSON     = "Print the month pages as JSON"
	FlagDescCounter  = "Show the day of the other calendar next to each day"
	FlagDescRows     = "Maximum number of week rows per page"
	FlagDescMonths   = "Number of consecutive months to print"
	MsgVersionOutput = "%s version %s (%s/%s)\n"

	CmdShort        = "Bikram Sambat / Gregorian calendar grids and feeds"
	CmdServeUse     = "serve"
	CmdServeShort   = "Serve the calendar feed and month pages over HTTP"
	CmdConvertUse   = "convert DATE SYSTEM"
	CmdConvertShort = "Convert a date between AD and BS"
	CmdMonthUse     = "month [YYYY-MM]"
	CmdMonthShort   = "Print the grid of one month"

	MsgConvertOutput = "%s = %s (%s)\n"
)

// -----------------------------------------------------------------------------
// Environment (runtime settings)
// -----------------------------------------------------------------------------

// EnvPrefix is prepended to every settings variable, e.g. PATRO_PORT.
const EnvPrefix = "PATRO_"

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort          = "18081"
	DefaultSystem        = "BS"
	DefaultFirstDay      = "sunday"
	DefaultMaxRowCount   = 6
	DefaultInDates       = "all_months"
	DefaultOutDates      = "end_of_row"
	DefaultMonthsBefore  = 1
	DefaultMonthsAfter   = 12
	DefaultRefreshMin    = 360
	UIDSalt              = "go-patro-v1-" // Salt for deterministic UID generation
	MonthArgLayout       = "YYYY-MM"
	GridColumnWidth      = 4
	GridCounterpartWidth = 3
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Patro//Engine//EN"
	ICalCalName = "Bikram Sambat"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gopatro"

	// iCal Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDescription = "DESCRIPTION"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropTransp      = "TRANSP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	ICalTransparent = "TRANSPARENT"

	DefaultICalRefresh = 6 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	// Limits
	MinPort = 1
	MaxPort = 65535

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s@%s"

	// Summary of an all-day event, e.g. "Bhadra 12, 2081 BS".
	FormatDaySummary = "%s %d, %d %s"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	RoutePages         = "/pages"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderServer          = "Server"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrPortNumber     = "server port must be a number"
	ErrPortRange      = "server port must be between 1 and 65535"
	ErrSettings       = "invalid settings"
	ErrParseEnv       = "parse env"
	ErrGridGenerate   = "failed to generate month pages"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrJSONEncode     = "failed to encode month pages"
	ErrDateArg        = "invalid date argument"
	ErrMonthArg       = "invalid month argument, expected " + MonthArgLayout
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrRenderFailed   = "render failed"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgRenderStarted = "Rendering calendar..."
	MsgRenderSuccess = "Calendar rendering successful"
	MsgWorkerStart   = "Background worker started"
	MsgWorkerStop    = "Worker stopping due to context cancellation"
	MsgAppStop       = "Application stopped gracefully"
	MsgAppStarting   = "Starting application"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Calendar cache updated"
	MsgSettings      = "Settings loaded"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgMonthCount    = "months must be at least 1"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyPort      = "port"
	LogKeyInterval  = "interval"
	LogKeySystem    = "system"
	LogKeyBounded   = "bounded"
	LogKeyToday     = "today"
	LogKeyStart     = "start"
	LogKeyEnd       = "end"
	LogKeyPages     = "pages"
	LogKeyDays      = "days"
	LogKeyRoute     = "route"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyStats     = "stats"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "build_date"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompEngine = "engine"
	CompServer = "server"
	CompWorker = "worker"
	CompMain   = "main"
	CompCLI    = "cli"
)
