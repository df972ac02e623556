package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/kakai/internal/calexport"
	"github.com/dmitrijs2005/kakai/internal/datex"
	"github.com/dmitrijs2005/kakai/internal/models"
)

// Setup asks for the couple names and the relationship start date.
func (a *App) Setup(ctx context.Context, _ []string) error {
	names, err := GetSimpleText(a.reader, "커플 이름을 입력해주세요 (예: 지민 & 수지)", a.out)
	if err != nil {
		return err
	}
	user, partner := models.ParseCoupleNames(names)
	if user == "" {
		return errNameRequired
	}
	if partner == "" {
		if partner, err = GetSimpleText(a.reader, "상대방 이름", a.out); err != nil {
			return err
		}
		if partner == "" {
			return errNameRequired
		}
	}

	start, err := GetDate(a.reader, "처음 만난 날", nil, a.store.Location(), a.out)
	if err != nil {
		return err
	}

	if !a.store.SetupProfile(ctx, user, partner, start) {
		return errSaveFailed
	}
	fmt.Fprintf(a.out, "%s, 함께한 지 %d일째입니다\n", a.store.CoupleNames(), a.store.DaysTogether())
	return nil
}

// Profile prints the couple profile; "profile edit" changes it.
func (a *App) Profile(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "edit" {
		p := a.store.Profile()
		var err error
		if p.UserName, err = GetTextWithDefault(a.reader, "내 이름", p.UserName, a.out); err != nil {
			return err
		}
		if p.PartnerName, err = GetTextWithDefault(a.reader, "상대방 이름", p.PartnerName, a.out); err != nil {
			return err
		}
		start := p.RelationshipStartDate
		if p.RelationshipStartDate, err = GetDate(a.reader, "처음 만난 날", &start, a.store.Location(), a.out); err != nil {
			return err
		}
		a.store.UpdateProfile(ctx, p)
	}

	p := a.store.Profile()
	fmt.Fprintln(a.out, a.store.CoupleNames())
	fmt.Fprintf(a.out, "처음 만난 날: %s\n", p.RelationshipStartDate.In(a.store.Location()).Format(datex.DateLayout))
	fmt.Fprintf(a.out, "함께한 시간: %d일\n", a.store.DaysTogether())
	return nil
}

// Add plans a meeting. The title may be given inline.
func (a *App) Add(ctx context.Context, args []string) error {
	title := strings.Join(args, " ")
	if title == "" {
		var err error
		if title, err = GetSimpleText(a.reader, "제목", a.out); err != nil {
			return err
		}
	}
	if title == "" {
		return errTitleRequired
	}

	loc := a.store.Location()
	start, err := GetDate(a.reader, "시작일", nil, loc, a.out)
	if err != nil {
		return err
	}
	end, err := GetOptionalDate(a.reader, "종료일 (당일이면 Enter)", nil, loc, a.out)
	if err != nil {
		return err
	}
	if end != nil && datex.DayDiff(start, *end, loc) < 0 {
		return errEndBeforeStart
	}

	m := a.store.AddMeeting(ctx, title, start, end)
	fmt.Fprintf(a.out, "추가됨: %s\n", formatMeeting(m, loc))
	return nil
}

// List prints all meetings ordered by start date.
func (a *App) List(_ context.Context, _ []string) error {
	ms := a.store.Meetings()
	if len(ms) == 0 {
		fmt.Fprintln(a.out, "등록된 만남이 없습니다")
		return nil
	}
	for _, m := range ms {
		fmt.Fprintln(a.out, formatMeeting(m, a.store.Location()))
	}
	return nil
}

// Show prints one meeting with its memos and its month calendar.
func (a *App) Show(ctx context.Context, args []string) error {
	m, err := a.resolveMeeting(args)
	if err != nil {
		return err
	}
	loc := a.store.Location()

	fmt.Fprintln(a.out, m.Title)
	fmt.Fprintf(a.out, "날짜: %s\n", formatDates(m, loc))
	if d, ok := m.DurationText(loc); ok {
		fmt.Fprintf(a.out, "기간: %s\n", d)
	}
	fmt.Fprintf(a.out, "D-day: %s\n", dDay(datex.DayDiff(a.store.Now(), m.StartDate, loc)))
	if m.IsCompleted {
		fmt.Fprintln(a.out, "상태: 완료")
	}
	if m.PhotoFilename != "" {
		if _, ok := a.store.LoadImage(ctx, m.PhotoFilename); ok {
			fmt.Fprintf(a.out, "사진: %s\n", m.PhotoFilename)
		} else {
			fmt.Fprintf(a.out, "사진: %s (불러올 수 없음)\n", m.PhotoFilename)
		}
	}
	for i, memo := range m.Memos {
		fmt.Fprintf(a.out, "메모 %d: %s\n", i+1, memo)
	}
	fmt.Fprintln(a.out)
	renderMonth(a.out, datex.NewMonthGrid(m.StartDate, m.EndDate, loc))
	return nil
}

// Edit changes the title and dates of a meeting; empty answers keep the
// current values.
func (a *App) Edit(ctx context.Context, args []string) error {
	m, err := a.resolveMeeting(args)
	if err != nil {
		return err
	}
	loc := a.store.Location()

	if m.Title, err = GetTextWithDefault(a.reader, "제목", m.Title, a.out); err != nil {
		return err
	}
	start := m.StartDate
	if m.StartDate, err = GetDate(a.reader, "시작일", &start, loc, a.out); err != nil {
		return err
	}
	if m.EndDate, err = GetOptionalDate(a.reader, "종료일 (지우려면 -)", m.EndDate, loc, a.out); err != nil {
		return err
	}
	if m.EndDate != nil && datex.DayDiff(m.StartDate, *m.EndDate, loc) < 0 {
		return errEndBeforeStart
	}

	if !a.store.UpdateMeeting(ctx, m) {
		return errMeetingNotFound
	}
	fmt.Fprintf(a.out, "수정됨: %s\n", formatMeeting(m, loc))
	return nil
}

// Complete toggles the completed flag.
func (a *App) Complete(ctx context.Context, args []string) error {
	m, err := a.resolveMeeting(args)
	if err != nil {
		return err
	}
	if !a.store.SetCompleted(ctx, m.ID, !m.IsCompleted) {
		return errMeetingNotFound
	}
	if m.IsCompleted {
		fmt.Fprintf(a.out, "완료 취소: %s\n", m.Title)
	} else {
		fmt.Fprintf(a.out, "완료: %s\n", m.Title)
	}
	return nil
}

// Memo appends a plan note; the text may follow the id inline.
func (a *App) Memo(ctx context.Context, args []string) error {
	m, err := a.resolveMeeting(args)
	if err != nil {
		return err
	}
	note := ""
	if len(args) > 1 {
		note = strings.Join(args[1:], " ")
	} else if note, err = GetSimpleText(a.reader, "메모", a.out); err != nil {
		return err
	}
	if !a.store.AppendMemo(ctx, m.ID, note) {
		return errMemoRequired
	}
	fmt.Fprintf(a.out, "메모 추가됨: %s\n", m.Title)
	return nil
}

// Photo attaches an image file to a meeting; "-" as the path removes the
// current photo.
func (a *App) Photo(ctx context.Context, args []string) error {
	m, err := a.resolveMeeting(args)
	if err != nil {
		return err
	}
	path := ""
	if len(args) > 1 {
		path = args[1]
	} else if path, err = GetSimpleText(a.reader, "사진 파일 경로", a.out); err != nil {
		return err
	}

	if path == "-" {
		if !a.store.RemovePhoto(ctx, m.ID) {
			return errNoPhoto
		}
		fmt.Fprintln(a.out, "사진 삭제됨")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("사진을 읽을 수 없습니다: %w", err)
	}
	name, ok := a.store.AttachPhoto(ctx, m.ID, data)
	if !ok {
		return errSaveFailed
	}
	fmt.Fprintf(a.out, "사진 저장됨: %s\n", name)
	return nil
}

// Delete removes a meeting after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	m, err := a.resolveMeeting(args)
	if err != nil {
		return err
	}
	ok, err := GetConfirm(a.reader, fmt.Sprintf("'%s'을(를) 삭제할까요?", m.Title), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "취소되었습니다")
		return nil
	}
	a.store.DeleteMeeting(ctx, m.ID)
	fmt.Fprintf(a.out, "삭제됨: %s\n", m.Title)
	return nil
}

// Upcoming prints the next planned meeting.
func (a *App) Upcoming(_ context.Context, _ []string) error {
	m, ok := a.store.UpcomingMeeting()
	if !ok {
		fmt.Fprintln(a.out, "예정된 만남이 없습니다")
		return nil
	}
	days, _ := a.store.DaysUntilNextMeeting()
	fmt.Fprintf(a.out, "다음 만남: %s (%s)\n", formatMeeting(m, a.store.Location()), dDay(days))
	return nil
}

// Export writes all meetings to an iCalendar file.
func (a *App) Export(_ context.Context, args []string) error {
	path := "kakai.ics"
	if len(args) > 0 {
		path = args[0]
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	ms := a.store.Meetings()
	if err := calexport.Write(f, ms, a.store.Location()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d개의 만남을 %s에 내보냈습니다\n", len(ms), path)
	return nil
}

// resolveMeeting finds the meeting whose id starts with args[0], prompting
// for the id when none was given.
func (a *App) resolveMeeting(args []string) (models.Meeting, error) {
	var prefix string
	if len(args) > 0 {
		prefix = args[0]
	} else {
		var err error
		if prefix, err = GetSimpleText(a.reader, "만남 id", a.out); err != nil {
			return models.Meeting{}, err
		}
	}
	if prefix == "" {
		return models.Meeting{}, errMeetingNotFound
	}

	if m, ok := a.store.Meeting(prefix); ok {
		return m, nil
	}

	var found []models.Meeting
	for _, m := range a.store.Meetings() {
		if strings.HasPrefix(m.ID, prefix) {
			found = append(found, m)
		}
	}
	switch len(found) {
	case 0:
		return models.Meeting{}, errMeetingNotFound
	case 1:
		return found[0], nil
	default:
		return models.Meeting{}, errAmbiguousID
	}
}
