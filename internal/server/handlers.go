package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/username/date-picker/internal/calendar"
	"github.com/username/date-picker/internal/picker"
	"go.uber.org/zap"
)

// handleIndex mounts a widget with the configured defaults
func (s *Server) handleIndex(c echo.Context) error {
	return s.create(c, "", "", "")
}

func (s *Server) handleCreate(c echo.Context) error {
	return s.create(c, c.FormValue("start"), c.FormValue("end"), c.FormValue("excluded"))
}

func (s *Server) create(c echo.Context, start, end, excluded string) error {
	p, err := s.newPicker(start, end, excluded)
	if err != nil {
		s.logger.Info("Rejected picker boundaries",
			zap.String("start", start),
			zap.String("end", end),
			zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess := s.sessions.create(p)

	if wantsJSON(c) {
		sess.mu.Lock()
		defer sess.mu.Unlock()
		return c.JSON(http.StatusCreated, viewOf(sess))
	}
	return c.Redirect(http.StatusSeeOther, "/pickers/"+sess.id)
}

func (s *Server) handleShow(c echo.Context) error {
	return s.withSession(c, func(sess *session) error {
		return c.Render(http.StatusOK, "picker", viewOf(sess))
	})
}

func (s *Server) handleState(c echo.Context) error {
	return s.withSession(c, func(sess *session) error {
		return c.JSON(http.StatusOK, viewOf(sess))
	})
}

func (s *Server) handleDisabledFeed(c echo.Context) error {
	return s.withSession(c, func(sess *session) error {
		feed := disabledFeed(sess.id, sess.picker.Disabled(), sess.picker.Note, s.clock())
		return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
	})
}

func (s *Server) handlePrev(c echo.Context) error {
	return s.event(c, func(sess *session) {
		sess.picker.PreviousMonth()
	})
}

func (s *Server) handleNext(c echo.Context) error {
	return s.event(c, func(sess *session) {
		sess.picker.NextMonth()
	})
}

func (s *Server) handleSelect(c echo.Context) error {
	return s.withSession(c, func(sess *session) error {
		d, err := calendar.ParseDate(c.FormValue("date"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		return s.respond(c, sess, func() {
			if sess.picker.SelectDate(d) {
				sess.dateError = ""
				sess.confirmed = ""
			}
		})
	})
}

func (s *Server) handleBoundary(c echo.Context) error {
	return s.withSession(c, func(sess *session) error {
		role, err := calendar.ParseRole(c.FormValue("role"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		value := c.FormValue("value")

		return s.respond(c, sess, func() {
			msg := sess.picker.SetBoundary(role, value)
			switch role {
			case calendar.RoleStart:
				sess.startValue, sess.startError = value, msg
			case calendar.RoleEnd:
				sess.endValue, sess.endError = value, msg
			}
		})
	})
}

func (s *Server) handleConfirm(c echo.Context) error {
	return s.event(c, func(sess *session) {
		confirmation, err := sess.picker.Confirm()
		if errors.Is(err, picker.ErrNoSelection) {
			sess.dateError = picker.NoSelectionMessage
			sess.confirmed = ""
			return
		}
		sess.dateError = ""
		sess.confirmed = confirmation.Label
	})
}

func (s *Server) handleReset(c echo.Context) error {
	return s.event(c, func(sess *session) {
		sess.picker.Reset()
		sess.dateError = ""
		sess.confirmed = ""
	})
}

// withSession runs fn with the session locked
func (s *Server) withSession(c echo.Context, fn func(sess *session) error) error {
	sess, err := s.sessions.get(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return fn(sess)
}

// event applies one user interaction to the session named in the path
func (s *Server) event(c echo.Context, apply func(sess *session)) error {
	return s.withSession(c, func(sess *session) error {
		return s.respond(c, sess, func() { apply(sess) })
	})
}

// respond runs apply on a locked session and answers with the new state:
// JSON for API clients, a redirect back to the widget for forms
func (s *Server) respond(c echo.Context, sess *session, apply func()) error {
	apply()

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, viewOf(sess))
	}
	return c.Redirect(http.StatusSeeOther, "/pickers/"+sess.id)
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
