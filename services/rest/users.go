package rest

import (
	"context"
	"net/http"

	"github.com/coachly/mobile/core/student"
)

var _ student.Roster = (*Client)(nil) // interface compliance check

// Students fetches the full student roster, in backend order.
func (c *Client) Students(ctx context.Context) ([]student.Student, error) {
	var list []student.Student
	if err := c.do(ctx, http.MethodGet, "/users/students", nil, &list, "Failed to fetch students"); err != nil {
		return nil, err
	}
	return list, nil
}
