package queries

import (
	"github.com/chrisaacson69/monopoly/app/models"
	"github.com/go-pg/pg/v10"
	"github.com/gomodule/redigo/redis"
	log "github.com/sirupsen/logrus"
)

func VerifyRun(code string, db *pg.DB) bool {
	run := new(models.Run)
	err := db.Model(run).Where("code = ?", code).Select()
	if err != nil {
		return false
	} else {
		return true
	}
}

func CreateRun(run *models.Run, db *pg.DB) error {
	_, err := db.Model(run).Insert()
	return err
}

// StartRun persists a fresh run and readies its cache bookkeeping, so
// watchers can find it before the first trial has played.
func StartRun(run *models.Run, db *pg.DB, conn *redis.Conn) bool {
	if err := CreateRun(run, db); err != nil {
		log.WithField("code", run.Code).Error(err)
		return false
	}
	InitRunProgress(run.Code, run.Rolls, conn)
	MarkRunActive(run.Code, conn)
	return true
}

func GetRunByCode(code string, db *pg.DB) (*models.Run, error) {
	run := new(models.Run)
	err := db.Model(run).Where("code = ?", code).Select()
	if err != nil {
		return nil, err
	}
	return run, nil
}

func GetRunsForUser(userID string, db *pg.DB) ([]models.Run, error) {
	var runs []models.Run
	err := db.Model(&runs).Where("user_id = ?", userID).Order("created_at DESC").Select()
	return runs, err
}

// FinishRun stores both reports and flips the run to done.
func FinishRun(code string, shortReport string, longReport string, db *pg.DB) error {
	run := new(models.Run)
	_, err := db.Model(run).
		Set("status = ?", "done").
		Set("short_report = ?", shortReport).
		Set("long_report = ?", longReport).
		Where("code = ?", code).
		Update()
	return err
}

func FailRun(code string, db *pg.DB) error {
	run := new(models.Run)
	_, err := db.Model(run).Set("status = ?", "failed").Where("code = ?", code).Update()
	return err
}

// DeleteRun removes a user's own run. The row count tells the caller
// whether anything was actually theirs to delete.
func DeleteRun(code string, userID string, db *pg.DB) (bool, error) {
	run := new(models.Run)
	res, err := db.Model(run).Where("code = ? and user_id = ?", code, userID).Delete()
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
