package database

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"hospital-bed-booking/internal/config"
	"hospital-bed-booking/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Target is a resolved driver name plus the DSN that driver understands
type Target struct {
	Driver string
	DSN    string
}

// Resolve picks the database to use: explicit DATABASE_URL, then the composed
// local MySQL settings when USE_LOCAL_MYSQL=1, then the embedded SQLite file.
func Resolve(cfg config.DatabaseConfig) (Target, error) {
	if cfg.URL != "" {
		return ParseURL(cfg.URL)
	}

	if cfg.UseLocalMySQL {
		mc := mysqlConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
		mc.DBName = cfg.Name
		return Target{Driver: DriverMySQL, DSN: mc.FormatDSN()}, nil
	}

	return Target{Driver: DriverSQLite, DSN: cfg.SQLitePath}, nil
}

// ParseURL converts a connection URL into a driver target.
// Dialect suffixes such as mysql+mysqlconnector:// are accepted and ignored.
func ParseURL(raw string) (Target, error) {
	scheme, _, found := strings.Cut(raw, ":")
	if !found {
		return Target{}, fmt.Errorf("database url %q has no scheme", raw)
	}
	scheme, _, _ = strings.Cut(strings.ToLower(scheme), "+")

	switch scheme {
	case "sqlite", "sqlite3":
		path := strings.TrimPrefix(raw[strings.Index(raw, ":")+1:], "//")
		// sqlite:///relative.db keeps one leading slash from the triple-slash form
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			return Target{}, errors.New("sqlite url has no file path")
		}
		return Target{Driver: DriverSQLite, DSN: path}, nil

	case "postgres", "postgresql":
		u, err := url.Parse(raw)
		if err != nil {
			return Target{}, fmt.Errorf("parse postgres url: %w", err)
		}
		u.Scheme = "postgres"
		return Target{Driver: DriverPostgres, DSN: u.String()}, nil

	case "mysql":
		u, err := url.Parse(raw)
		if err != nil {
			return Target{}, fmt.Errorf("parse mysql url: %w", err)
		}
		mc := mysqlConfig()
		mc.User = u.User.Username()
		mc.Passwd, _ = u.User.Password()
		mc.Addr = u.Host
		if u.Port() == "" {
			mc.Addr = net.JoinHostPort(u.Hostname(), "3306")
		}
		mc.DBName = strings.TrimPrefix(u.Path, "/")
		for key, values := range u.Query() {
			if len(values) > 0 {
				mc.Params[key] = values[0]
			}
		}
		return Target{Driver: DriverMySQL, DSN: mc.FormatDSN()}, nil
	}

	return Target{}, fmt.Errorf("unsupported database scheme %q", scheme)
}

func mysqlConfig() *mysql.Config {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc
}

// Open returns a GORM connection for the target
func Open(target Target, logLevel logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch target.Driver {
	case DriverMySQL:
		dialector = gormmysql.Open(target.DSN)
	case DriverPostgres:
		dialector = postgres.Open(target.DSN)
	case DriverSQLite:
		dialector = sqlite.Open(target.DSN)
	default:
		return nil, fmt.Errorf("unsupported driver %q", target.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}

	if target.Driver == DriverSQLite {
		// one writer at a time for the embedded file
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// Connect resolves, opens and migrates the configured database, exiting on failure
func Connect(cfg *config.Config, log *logrus.Logger) *gorm.DB {
	target, err := Resolve(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to resolve database: %v", err)
	}

	// Configure GORM logger
	level := logger.Info
	if cfg.Server.GinMode == "release" {
		level = logger.Error
	}

	db, err := Open(target, level)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.WithField("driver", target.Driver).Info("Successfully connected to database")

	return db
}

// Migrate creates or updates every table
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}
