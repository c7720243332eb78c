package models

import "time"

// 추출된 테이블 한 행, 셀 텍스트 순서 유지
type Row []string

// 추출 실행 기록 (--db 옵션 사용 시)
type ExtractionRun struct {
	ID        int64     `json:"id"`
	Source    string    `json:"source"`
	Output    string    `json:"output"`
	RowCount  int       `json:"row_count"`
	CreatedAt time.Time `json:"created_at"`
}
