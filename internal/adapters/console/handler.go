package console

import (
	"context"
	"fmt"
	"io"

	"github.com/ogurasousui/employee-record/internal/core/employee"
)

// ProfileHandler は社員プロフィールをコンソールへ出力するアダプタです。
type ProfileHandler struct {
	svc employee.UseCase
	out io.Writer
}

// NewProfileHandler は ProfileHandler を生成します。
func NewProfileHandler(svc employee.UseCase, out io.Writer) *ProfileHandler {
	return &ProfileHandler{svc: svc, out: out}
}

// Report は Show の結果です。
type Report struct {
	Summary  *employee.Summary
	Rejected []employee.Rejection
}

// Show はプロフィールを新しい社員レコードへ適用し、レコードと派生値を表形式で出力します。
// 受理されなかった項目は別表として出力され、処理自体は継続します。
func (h *ProfileHandler) Show(ctx context.Context, in employee.ProfileInput) (*Report, error) {
	res, err := h.svc.Onboard(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("onboard: %w", err)
	}

	summary, err := h.svc.Summarize(ctx, res.Employee)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	if err := RenderSummary(h.out, summary); err != nil {
		return nil, err
	}
	if len(res.Rejected) > 0 {
		if _, err := fmt.Fprintln(h.out); err != nil {
			return nil, err
		}
		if err := RenderRejections(h.out, res.Rejected); err != nil {
			return nil, err
		}
	}

	return &Report{Summary: summary, Rejected: res.Rejected}, nil
}
