package controllers

import (
	"encoding/json"
	"time"

	"github.com/chrisaacson69/monopoly/app/models"
	"github.com/chrisaacson69/monopoly/pkg"
	"github.com/chrisaacson69/monopoly/platform/board"
	"github.com/chrisaacson69/monopoly/platform/cache"
	"github.com/chrisaacson69/monopoly/platform/database"
	"github.com/chrisaacson69/monopoly/platform/engine"
	"github.com/chrisaacson69/monopoly/platform/queries"
	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

func currentUserID(c *fiber.Ctx) string {
	user := c.Locals("user").(*jwt.Token)
	claims := user.Claims.(jwt.MapClaims)
	return claims["user_id"].(string)
}

// CreateRun plays both jail strategies for the requested number of rolls
// and answers with the reports. The run is findable by code while it
// plays, so big requests can be polled from elsewhere.
func CreateRun(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	runDto := new(models.RunCreateDto)
	if err := c.BodyParser(runDto); err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	if runDto.Rolls <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "rolls must be a positive number"})
	}

	run := &models.Run{
		Id:        uuid.NewV4().String(),
		Code:      pkg.RandString(8),
		UserId:    currentUserID(c),
		Rolls:     runDto.Rolls,
		Status:    "running",
		CreatedAt: time.Now(),
	}

	pool := cache.CreateRedisPool()
	defer pool.Close()
	conn := pool.Get()
	defer conn.Close()

	if !queries.StartRun(run, db, &conn) {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	log.WithFields(log.Fields{"code": run.Code, "rolls": run.Rolls}).Info("run started")

	every := run.Rolls / 100
	if every == 0 {
		every = 1
	}
	short, long := engine.RunPolicies(run.Rolls, time.Now().UnixNano(), every, func(leaveJail int, done, total int64) {
		pc := pool.Get()
		defer pc.Close()
		queries.StepRunProgress(run.Code, leaveJail, done, &pc)
	})

	shortJSON, err := json.Marshal(short)
	if err != nil {
		panic(err)
	}
	longJSON, err := json.Marshal(long)
	if err != nil {
		panic(err)
	}
	if err := queries.FinishRun(run.Code, string(shortJSON), string(longJSON), db); err != nil {
		log.WithField("code", run.Code).Error(err)
	}

	payload := queries.RunReportsPayload(run.Code, string(shortJSON), string(longJSON))
	queries.CacheRunReports(run.Code, payload, &conn)
	queries.CompleteRunProgress(run.Code, run.Rolls, &conn)
	queries.ClearRunActive(run.Code, &conn)
	log.WithField("code", run.Code).Info("run finished")

	c.Type("json")
	return c.SendString(payload)
}

// GetRun serves a run's reports from the cache when it can, falling
// back to the stored row. Both paths answer with the same payload.
func GetRun(c *fiber.Ctx) error {
	code := c.Params("code")

	if conn, err := cache.CreateRedisConnection(); err == nil {
		defer conn.Close()
		if reports, err := queries.GetCachedRunReports(code, &conn); err == nil {
			c.Type("json")
			return c.SendString(reports)
		}
	}

	db := database.PostgreSQLConnection()
	defer db.Close()

	run, err := queries.GetRunByCode(code, db)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	c.Type("json")
	return c.SendString(queries.RunReportsPayload(run.Code, run.ShortReport, run.LongReport))
}

// VerifyRun answers whether a run code exists, for clients checking a
// shared code before joining its room.
func VerifyRun(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	verifyRunDto := new(models.VerifyRunDto)
	if err := c.QueryParser(verifyRunDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return c.JSON(fiber.Map{"status": queries.VerifyRun(verifyRunDto.Code, db)})
}

func GetUserRuns(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	runs, err := queries.GetRunsForUser(currentUserID(c), db)
	if err != nil {
		log.Error(err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(runs)
}

func GetRunProgress(c *fiber.Ctx) error {
	code := c.Params("code")

	if conn, err := cache.CreateRedisConnection(); err == nil {
		defer conn.Close()
		if done, total, err := queries.GetRunProgress(code, &conn); err == nil {
			status := "running"
			if total > 0 && done >= total {
				status = "done"
			}
			return c.JSON(fiber.Map{"code": code, "done": done, "total": total, "status": status})
		}
	}

	db := database.PostgreSQLConnection()
	defer db.Close()

	run, err := queries.GetRunByCode(code, db)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	done := int64(0)
	if run.Status == "done" {
		done = 2 * run.Rolls
	}
	return c.JSON(fiber.Map{"code": code, "done": done, "total": 2 * run.Rolls, "status": run.Status})
}

func GetActiveRuns(c *fiber.Ctx) error {
	conn, err := cache.CreateRedisConnection()
	if err != nil {
		log.Error(err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	defer conn.Close()

	codes, err := queries.ActiveRuns(&conn)
	if err != nil {
		log.Error(err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(codes)
}

func DeleteRun(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	code := c.Params("code")
	deleted, err := queries.DeleteRun(code, currentUserID(c), db)
	if err != nil {
		log.Error(err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	if !deleted {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if conn, err := cache.CreateRedisConnection(); err == nil {
		defer conn.Close()
		queries.DropRunCache(code, &conn)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func GetBoard(c *fiber.Ctx) error {
	return c.JSON(board.Spaces())
}
