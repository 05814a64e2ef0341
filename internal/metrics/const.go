package metrics

const Namespace = "finboard"

const (
	CacheTypeRedis  = "redis"
	CacheTypeMemory = "memory"
)

const (
	SessionFetchOutcomeUser      = "user"
	SessionFetchOutcomeAnonymous = "anonymous"
)
