package configs

// Redis holds connection settings for the Redis cache backend. They are only
// used when Cache.Driver is "redis".
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}
