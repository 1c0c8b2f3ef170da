// пакеты исполняемых приложений должны называться main
package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/wurt83ow/bookmovie-bot/internal/booking"
	"github.com/wurt83ow/bookmovie-bot/internal/logger"
	"github.com/wurt83ow/bookmovie-bot/internal/store"
	"github.com/wurt83ow/bookmovie-bot/internal/store/pg"
)

// функция main вызывается автоматически при запуске приложения
func main() {
	parseFlags()

	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	if err := logger.Initialize(flagLogLevel); err != nil {
		return err
	}

	// "сегодня" для проверки даты сеанса считаем в часовом поясе бота
	loc, err := time.LoadLocation(flagTimezone)
	if err != nil {
		return err
	}

	controller := booking.NewController(
		booking.NewValidator(booking.ZoneClock{Location: loc}, flagStrictCatalog),
		logger.Log,
	)

	// без адреса СУБД бронирования не записываются
	var recorder store.Recorder
	if flagDatabaseURI != "" {
		conn, err := sql.Open("pgx", flagDatabaseURI)
		if err != nil {
			return err
		}
		s := pg.NewStore(conn)
		if err := s.Bootstrap(context.Background()); err != nil {
			return err
		}
		recorder = s
	}

	appInstance := newApp(controller, recorder)

	logger.Log.Info("Running server",
		zap.String("address", flagRunAddr),
		zap.String("timezone", loc.String()),
		zap.Bool("strict", flagStrictCatalog),
		zap.Bool("recording", recorder != nil),
	)
	// обернём хендлер webhook в middleware с логгированием и поддержкой gzip
	return http.ListenAndServe(flagRunAddr, logger.RequestLogger(gzipMiddleware(appInstance.webhook)))
}
