package config

import (
	"flag"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/nestjam/pariffiliator/internal/affiliate"
	"github.com/nestjam/pariffiliator/internal/tinyurl"
)

// Config описывает конфигурацию генератора партнерских ссылок.
// После запуска процесса конфигурация не меняется.
type Config struct {
	ServerAddress     string // адрес HTTP сервера
	AffiliateTag      string // партнерский тег Amazon Associates
	ShortenerEndpoint string // адрес API сокращения ссылок
	LogLevel          string // уровень логирования
	StrictDomain      bool   // строгая проверка домена магазина
	EnableHTTPS       bool   // запуск сервера по HTTPS с самоподписанным сертификатом
}

const (
	defaultServerAddr = ":8080"
	defaultLogLevel   = "info"
)

// Имена переменных среды.
const (
	ServerAddressEnv     = "SERVER_ADDRESS"
	AffiliateTagEnv      = "AFFILIATE_TAG"
	ShortenerEndpointEnv = "SHORTENER_ENDPOINT"
	LogLevelEnv          = "LOG_LEVEL"
	StrictDomainEnv      = "STRICT_DOMAIN"
	EnableHTTPSEnv       = "ENABLE_HTTPS"
)

// Environment определяет доступ к переменным среды.
type Environment interface {
	LookupEnv(key string) (string, bool)
}

// New создает экземпляр конфигурации с настройками по умолчанию.
func New() Config {
	return Config{
		ServerAddress:     defaultServerAddr,
		AffiliateTag:      affiliate.DefaultTag.String(),
		ShortenerEndpoint: tinyurl.DefaultEndpoint,
		LogLevel:          defaultLogLevel,
	}
}

// FromArgs заполняет параметры конфигурации из аргументов командной строки.
func (conf Config) FromArgs(args []string) Config {
	flagSet := flag.NewFlagSet("", flag.PanicOnError)
	flagSet.StringVar(&conf.ServerAddress, "a", conf.ServerAddress, "server address")
	flagSet.StringVar(&conf.AffiliateTag, "t", conf.AffiliateTag, "affiliate tag")
	flagSet.StringVar(&conf.ShortenerEndpoint, "e", conf.ShortenerEndpoint, "shortener endpoint")
	flagSet.StringVar(&conf.LogLevel, "l", conf.LogLevel, "log level")
	flagSet.BoolVar(&conf.StrictDomain, "strict", conf.StrictDomain, "strict retailer domain check")
	flagSet.BoolVar(&conf.EnableHTTPS, "s", conf.EnableHTTPS, "enable HTTPS")

	_ = flagSet.Parse(args[1:]) // exclude command name
	return conf
}

// FromEnv заполняет параметры конфигурации из переменных среды.
func (conf Config) FromEnv(env Environment) Config {
	if servAddr, ok := env.LookupEnv(ServerAddressEnv); ok {
		conf.ServerAddress = servAddr
	}

	if tag, ok := env.LookupEnv(AffiliateTagEnv); ok {
		conf.AffiliateTag = tag
	}

	if endpoint, ok := env.LookupEnv(ShortenerEndpointEnv); ok {
		conf.ShortenerEndpoint = endpoint
	}

	if level, ok := env.LookupEnv(LogLevelEnv); ok {
		conf.LogLevel = level
	}

	if strict, ok := lookupBool(env, StrictDomainEnv); ok {
		conf.StrictDomain = strict
	}

	if https, ok := lookupBool(env, EnableHTTPSEnv); ok {
		conf.EnableHTTPS = https
	}

	return conf
}

// FromDotEnv заполняет параметры конфигурации из .env файла. Переменные среды процесса не меняются.
// Если файла нет, конфигурация возвращается без изменений.
func (conf Config) FromDotEnv(path string) Config {
	values, err := godotenv.Read(path)
	if err != nil {
		return conf
	}

	return conf.FromEnv(dotEnv(values))
}

// Tag возвращает проверенный партнерский тег.
func (conf Config) Tag() (affiliate.Tag, error) {
	return affiliate.ParseTag(conf.AffiliateTag)
}

// HostPolicy возвращает политику проверки домена магазина.
func (conf Config) HostPolicy() affiliate.HostPolicy {
	if conf.StrictDomain {
		return affiliate.StrictPolicy{}
	}
	return affiliate.LenientPolicy{}
}

type dotEnv map[string]string

func (d dotEnv) LookupEnv(key string) (string, bool) {
	v, ok := d[key]
	return v, ok
}

func lookupBool(env Environment, key string) (bool, bool) {
	v, ok := env.LookupEnv(key)
	if !ok {
		return false, false
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
