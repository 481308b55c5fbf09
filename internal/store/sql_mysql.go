package store

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"

	"github.com/MKhiriev/go-phone-auth/internal/config"
	"github.com/MKhiriev/go-phone-auth/internal/logger"
)

const defaultMySQLPort = 3306

func NewConnectMySQL(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	myCfg, err := mysqlConfig(cfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error parsing database DSN")
		return nil, fmt.Errorf("error parsing database DSN: %w", err)
	}

	connector, err := mysql.NewConnector(myCfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error creating connector")
		return nil, fmt.Errorf("error creating mysql connector: %w", err)
	}

	conn := sql.OpenDB(connector)
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxOpenConns / 2)
	}

	if err = ping(ctx, conn, "NewConnectMySQL", log); err != nil {
		return nil, err
	}

	return newDB(conn, DriverMySQL, log), nil
}

// mysqlConfig parses cfg.DSN, or assembles a TCP config from the separate
// connection fields. Time parsing is always enabled and the connection
// charset is utf8mb4.
func mysqlConfig(cfg config.DB) (*mysql.Config, error) {
	if cfg.DSN != "" {
		myCfg, err := mysql.ParseDSN(cfg.DSN)
		if err != nil {
			return nil, err
		}
		myCfg.ParseTime = true
		return myCfg, nil
	}

	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = defaultMySQLPort
	}

	myCfg := mysql.NewConfig()
	myCfg.Net = "tcp"
	myCfg.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	myCfg.User = cfg.User
	myCfg.Passwd = cfg.Password
	myCfg.DBName = cfg.Name
	myCfg.ParseTime = true
	myCfg.Params = map[string]string{"charset": "utf8mb4"}

	return myCfg, nil
}
