package jsonparse

const (
	// Cache Sizes
	DefaultPathCacheSize = 256
	MaxPathCacheEntries  = 2048

	// Eviction keeps this fraction of entries (out of 4) when the
	// path cache fills up.
	cacheKeepQuarters = 3

	// Record identifier lengths accepted by GetIDValue.
	idLengthShort = 15
	idLengthLong  = 18
)

// Operation names carried in NodeError.Op.
const (
	opParse    = "parse"
	opResolve  = "resolve"
	opAsMap    = "as_map"
	opAsList   = "as_list"
	opString   = "get_string"
	opBoolean  = "get_boolean"
	opInt      = "get_int"
	opLong     = "get_long"
	opDouble   = "get_double"
	opDecimal  = "get_decimal"
	opBlob     = "get_blob"
	opID       = "get_id"
	opUUID     = "get_uuid"
	opDate     = "get_date"
	opTime     = "get_time"
	opDatetime = "get_datetime"
)
