package constants

const (
	// DefaultSeparator is the "Box Drawings Light Vertical" character used by most box-drawn CLI tables.
	DefaultSeparator   = "│"
	DefaultHeadersRow  = 1
	DefaultSortOrder   = "asc"
	ColumnPadding      = 2
	ColumnJoiner       = "  |  "
	RuleJoiner         = "+"
	RuleChar           = "-"
	QuietColumn        = "ID"
	TimestampLayout    = "2006-01-02 15:04:05"
	ConfigFileName     = "tf.config.json"
	DefaultLogLevel    = "warn"
	ColumnNumberPrefix = "$"
)

// viper keys, shared by the cli flags and the profile store
const (
	Profile     = "profile"
	HeadersRow  = "headers-row"
	SkipLines   = "skip-lines"
	SkipResults = "skip-results"
	Cols        = "cols"
	Separator   = "separator"
	Match       = "match"
	Quiet       = "quiet"
	SortBy      = "sort-by"
	SortOrder   = "sort-order"
	Transform   = "transform"
	NoHeaders   = "no-headers"
	LogLevel    = "log-level"
	LogFile     = "log-file"
	ConfigPath  = "config"
	EnvPrefix   = "TF"
)

// transform operations
const (
	AgeToDate = "$AGE_TO_DATE"
	ToLower   = "$TO_LOWER"
)
