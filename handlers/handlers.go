// Package handlers exposes the mail operations as named tools over HTTP.
// Every tool is a POST under /tools taking a JSON parameter object and
// returning either its payload or an error envelope; callers always get a
// parseable result.
package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/mailgate/mailgate/pkg/base"
	"github.com/mailgate/mailgate/pkg/mailops"
	"github.com/mailgate/mailgate/pkg/utils"
)

const defaultListLimit = 50

// ToolSet bundles the operation implementations behind the tool routes.
type ToolSet struct {
	Mailboxes *mailops.Mailboxes
	Messages  *mailops.Messages
	Sender    *mailops.Sender
	Logger    *slog.Logger
}

// Register mounts the health probe and one route per tool.
func Register(app *fiber.App, ts *ToolSet) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	tools := app.Group("/tools")
	tools.Post("/list_folders", ts.ListFolders)
	tools.Post("/create_folder", ts.CreateFolder)
	tools.Post("/delete_folder", ts.DeleteFolder)
	tools.Post("/list_recent_emails", ts.ListRecentEmails)
	tools.Post("/search_email", ts.SearchEmail)
	tools.Post("/read_email", ts.ReadEmail)
	tools.Post("/send_email", ts.SendEmail)
	tools.Post("/move_email", ts.MoveEmail)
	tools.Post("/delete_email", ts.DeleteEmail)
	tools.Post("/mark_email", ts.MarkEmail)
}

// ListFolders returns every folder name in server order.
func (ts *ToolSet) ListFolders(c *fiber.Ctx) error {
	names, err := ts.Mailboxes.List(c.UserContext())
	if err != nil {
		return ts.fail(c, "list_folders", err)
	}
	return c.JSON(names)
}

func (ts *ToolSet) CreateFolder(c *fiber.Ctx) error {
	var params struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&params); err != nil {
		return ts.fail(c, "create_folder", badRequest(err))
	}

	status, err := ts.Mailboxes.Create(c.UserContext(), params.Name)
	if err != nil {
		return ts.fail(c, "create_folder", err)
	}
	return c.JSON(status)
}

func (ts *ToolSet) DeleteFolder(c *fiber.Ctx) error {
	var params struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&params); err != nil {
		return ts.fail(c, "delete_folder", badRequest(err))
	}

	status, err := ts.Mailboxes.Delete(c.UserContext(), params.Name)
	if err != nil {
		return ts.fail(c, "delete_folder", err)
	}
	return c.JSON(status)
}

func (ts *ToolSet) ListRecentEmails(c *fiber.Ctx) error {
	var params struct {
		Folder string `json:"folder"`
		Limit  *int   `json:"limit"`
	}
	if err := c.BodyParser(&params); err != nil {
		return ts.fail(c, "list_recent_emails", badRequest(err))
	}

	limit := defaultListLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	summaries, err := ts.Messages.ListRecent(c.UserContext(), params.Folder, limit)
	if err != nil {
		return ts.fail(c, "list_recent_emails", err)
	}
	return c.JSON(summaries)
}

func (ts *ToolSet) SearchEmail(c *fiber.Ctx) error {
	var params struct {
		Folder string `json:"folder"`
		Query  string `json:"query"`
	}
	if err := c.BodyParser(&params); err != nil {
		return ts.fail(c, "search_email", badRequest(err))
	}

	summaries, err := ts.Messages.Search(c.UserContext(), params.Folder, params.Query)
	if err != nil {
		return ts.fail(c, "search_email", err)
	}
	return c.JSON(summaries)
}

func (ts *ToolSet) ReadEmail(c *fiber.Ctx) error {
	var params struct {
		Folder string `json:"folder"`
		ID     string `json:"id"`
	}
	if err := c.BodyParser(&params); err != nil {
		return ts.fail(c, "read_email", badRequest(err))
	}

	content, err := ts.Messages.Read(c.UserContext(), params.Folder, params.ID)
	if err != nil {
		return ts.fail(c, "read_email", err)
	}
	return c.JSON(content)
}

func (ts *ToolSet) SendEmail(c *fiber.Ctx) error {
	var req mailops.SendRequest
	if err := c.BodyParser(&req); err != nil {
		return ts.fail(c, "send_email", badRequest(err))
	}

	status, err := ts.Sender.Send(c.UserContext(), req)
	if err != nil {
		return ts.fail(c, "send_email", err)
	}
	return c.JSON(status)
}

func (ts *ToolSet) MoveEmail(c *fiber.Ctx) error {
	var params struct {
		Folder       string `json:"folder"`
		ID           string `json:"id"`
		TargetFolder string `json:"target_folder"`
	}
	if err := c.BodyParser(&params); err != nil {
		return ts.fail(c, "move_email", badRequest(err))
	}

	status, err := ts.Messages.Move(c.UserContext(), params.Folder, params.ID, params.TargetFolder)
	if err != nil {
		return ts.fail(c, "move_email", err)
	}
	return c.JSON(status)
}

func (ts *ToolSet) DeleteEmail(c *fiber.Ctx) error {
	var params struct {
		Folder string `json:"folder"`
		ID     string `json:"id"`
	}
	if err := c.BodyParser(&params); err != nil {
		return ts.fail(c, "delete_email", badRequest(err))
	}

	status, err := ts.Messages.Delete(c.UserContext(), params.Folder, params.ID)
	if err != nil {
		return ts.fail(c, "delete_email", err)
	}
	return c.JSON(status)
}

func (ts *ToolSet) MarkEmail(c *fiber.Ctx) error {
	var params struct {
		Folder string `json:"folder"`
		ID     string `json:"id"`
		Flag   string `json:"flag"`
	}
	if err := c.BodyParser(&params); err != nil {
		return ts.fail(c, "mark_email", badRequest(err))
	}

	// Resolve the flag before touching the session; an unknown name must
	// not issue any protocol command.
	flag, err := mailops.ParseFlag(params.Flag)
	if err != nil {
		return ts.fail(c, "mark_email", err)
	}

	status, err := ts.Messages.Mark(c.UserContext(), params.Folder, params.ID, flag)
	if err != nil {
		return ts.fail(c, "mark_email", err)
	}
	return c.JSON(status)
}

// fail renders an error as a result envelope. Validation failures keep the
// status/message shape the callers expect; everything else, including
// session-acquisition failures, becomes the uniform error envelope.
func (ts *ToolSet) fail(c *fiber.Ctx, tool string, err error) error {
	ts.Logger.ErrorContext(c.UserContext(), "tool failed",
		slog.String("tool", tool), slog.Any("error", utils.WrapError(err)))

	var validationErr *base.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(mailops.Status{Status: "error", Message: err.Error()})
	}

	return c.JSON(fiber.Map{"error": err.Error()})
}

func badRequest(err error) error {
	return &base.ValidationError{Field: "request body", Reason: err.Error()}
}
