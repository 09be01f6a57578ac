package subscriptions

import (
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/DigiPoint-niger/scolatek-sub000/app/database"
	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
	"github.com/DigiPoint-niger/scolatek-sub000/app/routes/auth"
)

var validate = validator.New()

type createSubscriptionRequest struct {
	Plan      string     `json:"plan" validate:"required"`
	Price     int64      `json:"price" validate:"gte=0"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// GetSubscriptionsAPI lists the school's subscriptions.
func GetSubscriptionsAPI(c *fiber.Ctx, db *sql.DB) error {
	subs, err := database.GetSubscriptions(db, auth.SchoolID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch subscriptions"})
	}
	return c.JSON(fiber.Map{"success": true, "data": subs})
}

// CreateSubscriptionAPI creates a pending subscription.
func CreateSubscriptionAPI(c *fiber.Ctx, db *sql.DB) error {
	var req createSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	sub := &models.Subscription{
		SchoolID:  auth.SchoolID(c),
		Plan:      req.Plan,
		Price:     req.Price,
		Status:    models.SubscriptionPending,
		ExpiresAt: req.ExpiresAt,
	}
	if err := database.CreateSubscription(db, sub); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create subscription"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "data": sub})
}

func transitionSubscription(c *fiber.Ctx, db *sql.DB, to models.SubscriptionStatus) error {
	err := database.TransitionSubscription(db, auth.SchoolID(c), c.Params("id"), to)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Subscription not found"})
	}
	var invalid *models.InvalidTransitionError
	if errors.As(err, &invalid) {
		return c.Status(409).JSON(fiber.Map{"success": false, "error": invalid.Error()})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update subscription"})
	}
	return c.JSON(fiber.Map{"success": true})
}

// ActivateSubscriptionAPI moves a pending subscription to active.
func ActivateSubscriptionAPI(c *fiber.Ctx, db *sql.DB) error {
	return transitionSubscription(c, db, models.SubscriptionActive)
}

// ExpireSubscriptionAPI moves a subscription to expired.
func ExpireSubscriptionAPI(c *fiber.Ctx, db *sql.DB) error {
	return transitionSubscription(c, db, models.SubscriptionExpired)
}
