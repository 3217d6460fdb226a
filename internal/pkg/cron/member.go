package cron

import (
	"context"
	"time"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/member"
)

// MemberJobs contains member-related cron jobs
type MemberJobs struct {
	memberService member.MemberService
}

// NewMemberJobs creates member cron jobs
func NewMemberJobs(memberService member.MemberService) *MemberJobs {
	return &MemberJobs{
		memberService: memberService,
	}
}

// RegisterJobs registers all member-related cron jobs
func (j *MemberJobs) RegisterJobs(scheduler *Scheduler) {
	// Mark members past their expire_date as expired once an hour
	scheduler.AddJob(
		"expire_members",
		1*time.Hour,
		j.ExpireMembers,
	)
}

// ExpireMembers transitions active members whose membership period has ended
// to the expired status.
func (j *MemberJobs) ExpireMembers(ctx context.Context) error {
	return j.memberService.ExpireOverdueMembers(ctx)
}
