package pg

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wurt83ow/bookmovie-bot/internal/models"
	"github.com/wurt83ow/bookmovie-bot/internal/store"
)

// Store реализует интерфейс store.Recorder и позволяет взаимодействовать с СУБД PostgreSQL.
type Store struct {
	// Поле conn содержит объект соединения с СУБД.
	conn *sql.DB
}

// NewStore возвращает новый экземпляр PostgreSQL хранилища
func NewStore(conn *sql.DB) *Store {
	return &Store{conn: conn}
}

// Bootstrap подготавливает БД к работе, создавая необходимые таблицы и индексы
func (s Store) Bootstrap(ctx context.Context) error {
	// запускаем транзакцию
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	// в случае неуспешного коммита все изменения транзакции будут отменены
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS reservations (
            id uuid PRIMARY KEY,
            user_id varchar(128) NOT NULL,
            user_name varchar(128),
            movie_name varchar(128) NOT NULL,
            theater_name varchar(128) NOT NULL,
            show_date varchar(32) NOT NULL,
            show_time varchar(8) NOT NULL,
            seat_type varchar(32),
            ticket_num integer,
            booked_at timestamp with time zone NOT NULL
        )
    `)
	if err != nil {
		return err
	}

	// один и тот же пользователь не может дважды забронировать один сеанс;
	// все колонки индекса NOT NULL, иначе Postgres считает строки с NULL различными
	_, err = tx.ExecContext(ctx, `
        CREATE UNIQUE INDEX IF NOT EXISTS reservation_show_idx
        ON reservations (user_id, movie_name, theater_name, show_date, show_time)
    `)
	if err != nil {
		return err
	}

	// коммитим транзакцию
	return tx.Commit()
}

func (s Store) SaveReservation(ctx context.Context, userID string, r models.Reservation) (string, error) {
	id := uuid.NewString()

	_, err := s.conn.ExecContext(ctx, `
        INSERT INTO reservations
        (id, user_id, user_name, movie_name, theater_name, show_date, show_time, seat_type, ticket_num, booked_at)
        VALUES
        ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `, id, userID, r.UserName, r.MovieName, r.TheaterName, r.Date, r.Time, r.SeatType, r.TicketNum, time.Now())

	if err != nil {
		// конфликтом считаем только повтор сеанса; нарушение NOT NULL остаётся обычной ошибкой
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			err = store.ErrConflict
		}
		return "", err
	}

	return id, nil
}
