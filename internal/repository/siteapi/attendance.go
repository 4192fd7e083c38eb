package siteapi

import (
	"context"
	"fmt"

	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/sitemgmt/site-panel-go/internal/pkg/siteapi"
)

type attendanceRepository struct {
	api *siteapi.Client
}

func NewAttendanceRepository(api *siteapi.Client) attendance.AttendanceRepository {
	return &attendanceRepository{api: api}
}

func (r *attendanceRepository) List(ctx context.Context, rng calendar.Range) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	if err := r.api.Get(ctx, "/api/attendance", rangeQuery(rng), &out); err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return nonNil(out), nil
}

func (r *attendanceRepository) ListByWorker(ctx context.Context, workerID int64, rng calendar.Range) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	if err := r.api.Get(ctx, idPath("/api/attendance/worker", workerID), rangeQuery(rng), &out); err != nil {
		return nil, fmt.Errorf("failed to list attendance for worker %d: %w", workerID, err)
	}
	return nonNil(out), nil
}

func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	var out attendance.Attendance
	if err := r.api.Post(ctx, "/api/attendance", a, &out); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to mark attendance: %w", err)
	}
	return out, nil
}

func (r *attendanceRepository) CreateBulk(ctx context.Context, records []attendance.Attendance) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	if err := r.api.Post(ctx, "/api/attendance/bulk", records, &out); err != nil {
		return nil, fmt.Errorf("failed to mark bulk attendance: %w", err)
	}
	return nonNil(out), nil
}

func (r *attendanceRepository) Update(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	var out attendance.Attendance
	if err := r.api.Put(ctx, idPath("/api/attendance", a.ID), a, &out); err != nil {
		return attendance.Attendance{}, mapNotFound(fmt.Errorf("failed to update attendance: %w", err), attendance.ErrAttendanceNotFound)
	}
	return out, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, idPath("/api/attendance", id)); err != nil {
		return mapNotFound(fmt.Errorf("failed to delete attendance: %w", err), attendance.ErrAttendanceNotFound)
	}
	return nil
}
