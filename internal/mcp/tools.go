package mcp

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tc2services/attivita/internal/domain/historical"
	"github.com/tc2services/attivita/internal/domain/user"
)

// ListUsersParams are the arguments for the list_users tool.
type ListUsersParams struct {
	Skip  int `json:"skip,omitempty" jsonschema:"offset for pagination"`
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of results"`
}

// ListUsersResult is the payload returned by list_users.
type ListUsersResult struct {
	Users []user.User `json:"users"`
}

// LogsByDeviceParams are the arguments for get_activities_logs_by_device.
type LogsByDeviceParams struct {
	DeviceID  string `json:"device_id" jsonschema:"device identifier"`
	Skip      int    `json:"skip,omitempty" jsonschema:"offset for pagination"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum number of results"`
	StartTime string `json:"start_time,omitempty" jsonschema:"only logs starting at or after this time (RFC 3339 or YYYY-MM-DD)"`
	StopTime  string `json:"stop_time,omitempty" jsonschema:"only logs stopping at or before this time (RFC 3339 or YYYY-MM-DD)"`
}

// LogsByUserParams are the arguments for get_activities_logs_by_user.
type LogsByUserParams struct {
	UserID    string `json:"user_id" jsonschema:"user identifier"`
	Skip      int    `json:"skip,omitempty" jsonschema:"offset for pagination"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum number of results"`
	StartTime string `json:"start_time,omitempty" jsonschema:"only logs starting at or after this time (RFC 3339 or YYYY-MM-DD)"`
	StopTime  string `json:"stop_time,omitempty" jsonschema:"only logs stopping at or before this time (RFC 3339 or YYYY-MM-DD)"`
}

// LogsResult is the payload returned by the log listing tools.
type LogsResult struct {
	ActivitiesLogs []historical.ActivityLog `json:"activities_logs"`
}

// SummaryByDeviceParams are the arguments for get_activity_summary_by_device.
type SummaryByDeviceParams struct {
	DeviceID  string   `json:"device_id" jsonschema:"device identifier"`
	StartTime string   `json:"start_time" jsonschema:"window start (RFC 3339 or YYYY-MM-DD)"`
	EndTime   string   `json:"end_time" jsonschema:"window end (RFC 3339 or YYYY-MM-DD)"`
	GroupBy   []string `json:"group_by,omitempty" jsonschema:"optional grouping dimensions (day)"`
}

// SummaryByUserParams are the arguments for get_activity_summary_by_user.
type SummaryByUserParams struct {
	UserID    string   `json:"user_id" jsonschema:"user identifier"`
	StartTime string   `json:"start_time" jsonschema:"window start (RFC 3339 or YYYY-MM-DD)"`
	EndTime   string   `json:"end_time" jsonschema:"window end (RFC 3339 or YYYY-MM-DD)"`
	GroupBy   []string `json:"group_by,omitempty" jsonschema:"optional grouping dimensions (day)"`
}

// AttentionByUserParams are the arguments for get_attention_level_summary_by_user.
type AttentionByUserParams struct {
	UserID    string   `json:"user_id" jsonschema:"user identifier"`
	StartTime string   `json:"start_time" jsonschema:"window start (RFC 3339 or YYYY-MM-DD)"`
	EndTime   string   `json:"end_time" jsonschema:"window end (RFC 3339 or YYYY-MM-DD)"`
	GroupBy   []string `json:"group_by,omitempty" jsonschema:"optional grouping dimensions (day, hour)"`
}

func registerTools(server *sdkmcp.Server, services Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_users",
		Description: "List registered users and their assigned devices",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params ListUsersParams) (*sdkmcp.CallToolResult, ListUsersResult, error) {
		users, err := services.Users.List(ctx, user.ListOptions{Skip: params.Skip, Limit: params.Limit})
		if err != nil {
			return nil, ListUsersResult{}, err
		}
		return nil, ListUsersResult{Users: users}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_activities_logs_by_device",
		Description: "List completed activity logs recorded by a device",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params LogsByDeviceParams) (*sdkmcp.CallToolResult, LogsResult, error) {
		opts, err := listOptions(params.Skip, params.Limit, params.StartTime, params.StopTime)
		if err != nil {
			return nil, LogsResult{}, err
		}
		logs, err := services.Historical.LogsByDevice(ctx, params.DeviceID, opts)
		if err != nil {
			return nil, LogsResult{}, err
		}
		return nil, LogsResult{ActivitiesLogs: logs}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_activities_logs_by_user",
		Description: "List completed activity logs across all devices assigned to a user",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params LogsByUserParams) (*sdkmcp.CallToolResult, LogsResult, error) {
		opts, err := listOptions(params.Skip, params.Limit, params.StartTime, params.StopTime)
		if err != nil {
			return nil, LogsResult{}, err
		}
		logs, err := services.Historical.LogsByUser(ctx, params.UserID, opts)
		if err != nil {
			return nil, LogsResult{}, err
		}
		return nil, LogsResult{ActivitiesLogs: logs}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_activity_summary_by_device",
		Description: "Classify a device's activity over a time window and summarize time per category and component",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params SummaryByDeviceParams) (*sdkmcp.CallToolResult, historical.SummaryResult, error) {
		start, stop, groupBy, err := summaryWindow(params.StartTime, params.EndTime, params.GroupBy)
		if err != nil {
			return nil, historical.SummaryResult{}, err
		}
		summary, err := services.Historical.ActivitySummaryByDevice(ctx, params.DeviceID, start, stop, groupBy)
		if err != nil {
			return nil, historical.SummaryResult{}, err
		}
		return nil, summary, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_activity_summary_by_user",
		Description: "Classify a user's activity across all assigned devices and summarize time per category and component",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params SummaryByUserParams) (*sdkmcp.CallToolResult, historical.SummaryResult, error) {
		start, stop, groupBy, err := summaryWindow(params.StartTime, params.EndTime, params.GroupBy)
		if err != nil {
			return nil, historical.SummaryResult{}, err
		}
		summary, err := services.Historical.ActivitySummaryByUser(ctx, params.UserID, start, stop, groupBy)
		if err != nil {
			return nil, historical.SummaryResult{}, err
		}
		return nil, summary, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_attention_level_summary_by_user",
		Description: "Score a user's activity against per-device attention rules and summarize productive time",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params AttentionByUserParams) (*sdkmcp.CallToolResult, historical.AttentionSummaryResult, error) {
		start, stop, groupBy, err := summaryWindow(params.StartTime, params.EndTime, params.GroupBy)
		if err != nil {
			return nil, historical.AttentionSummaryResult{}, err
		}
		summary, err := services.Historical.AttentionSummaryByUser(ctx, params.UserID, start, stop, groupBy)
		if err != nil {
			return nil, historical.AttentionSummaryResult{}, err
		}
		return nil, summary, nil
	})
}

func listOptions(skip, limit int, startTime, stopTime string) (historical.ListLogsOptions, error) {
	opts := historical.ListLogsOptions{Skip: skip, Limit: limit}

	start, err := optionalTime(startTime)
	if err != nil {
		return opts, fmt.Errorf("start_time: %w", err)
	}
	stop, err := optionalTime(stopTime)
	if err != nil {
		return opts, fmt.Errorf("stop_time: %w", err)
	}
	opts.StartTime = start
	opts.StopTime = stop
	return opts, nil
}

func summaryWindow(startTime, endTime string, groupBy []string) (time.Time, time.Time, []historical.GroupBy, error) {
	start, err := parseTime(startTime)
	if err != nil {
		return time.Time{}, time.Time{}, nil, fmt.Errorf("start_time: %w", err)
	}
	stop, err := parseTime(endTime)
	if err != nil {
		return time.Time{}, time.Time{}, nil, fmt.Errorf("end_time: %w", err)
	}

	groups := make([]historical.GroupBy, 0, len(groupBy))
	for _, raw := range groupBy {
		g, err := historical.ParseGroupBy(raw)
		if err != nil {
			return time.Time{}, time.Time{}, nil, err
		}
		groups = append(groups, g)
	}
	return start, stop, groups, nil
}

// parseTime accepts RFC 3339 timestamps or bare YYYY-MM-DD dates.
func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing timestamp")
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected RFC 3339 or YYYY-MM-DD, got %q", raw)
	}
	return t, nil
}

func optionalTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := parseTime(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
