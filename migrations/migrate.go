package migrations

import (
	"embed"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed changelog/*.sql
var changelog embed.FS

func Migrate(driver string, url string, log *slog.Logger) (err error) {
	db, err := goose.OpenDBWithDriver(driver, url)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			if err == nil {
				err = cerr
			} else {
				log.Error("error closing migration DB", "err", cerr)
			}
		}
	}()

	goose.SetBaseFS(changelog)

	if err := goose.Up(db, "changelog"); err != nil {
		return err
	}

	log.Info("Successfully applied migration")
	return nil
}
