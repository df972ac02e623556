package cli

import "errors"

var (
	errDateRequired    = errors.New("날짜를 입력해주세요")
	errTitleRequired   = errors.New("제목을 입력해주세요")
	errNameRequired    = errors.New("이름을 입력해주세요")
	errMemoRequired    = errors.New("메모 내용을 입력해주세요")
	errEndBeforeStart  = errors.New("종료일은 시작일보다 빠를 수 없습니다")
	errMeetingNotFound = errors.New("만남을 찾을 수 없습니다")
	errAmbiguousID     = errors.New("여러 만남과 일치합니다; id를 더 입력해주세요")
	errSaveFailed      = errors.New("저장에 실패했습니다")
	errNoPhoto         = errors.New("삭제할 사진이 없습니다")
)
