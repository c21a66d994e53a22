package telegram

import (
	"fmt"
	"strings"

	"saigon-foodtour/internal/schedule"
)

// FormatPlanMarkdown renders an itinerary as a Telegram Markdown message.
func FormatPlanMarkdown(plan *schedule.Plan) string {
	var sb strings.Builder
	sb.WriteString("🗺 *Lịch trình của bạn*\n")

	for _, slot := range plan.Ordered() {
		sb.WriteString(fmt.Sprintf("\n%s *%s - %s*\n", slot.Icon, slot.Time.Format(), slot.Title))
		v := slot.Venue
		if v == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("*%s*", v.Name))
		if v.Rating > 0 {
			sb.WriteString(fmt.Sprintf(" - ⭐ %.1f", v.Rating))
		}
		sb.WriteString("\n")
		if v.Address != "" {
			sb.WriteString(fmt.Sprintf("📍 %s\n", v.Address))
		}
		if v.PriceRange != "" {
			sb.WriteString(fmt.Sprintf("💵 %s\n", v.PriceRange))
		}
		if v.TravelMinutes > 0 {
			sb.WriteString(fmt.Sprintf("🛵 ~%d phút di chuyển, khởi hành %s\n",
				v.TravelMinutes, v.DepartAt.Format()))
		}
	}
	return sb.String()
}

// SummaryPrompt builds the prompt used for an optional conversational recap
// of the itinerary.
func SummaryPrompt(plan *schedule.Plan) string {
	var sb strings.Builder
	sb.WriteString("Bạn là hướng dẫn viên ẩm thực thân thiện. ")
	sb.WriteString("Tóm tắt lịch trình sau trong 2-3 câu tiếng Việt, giọng vui vẻ, không liệt kê lại giờ giấc:\n")
	for _, slot := range plan.Ordered() {
		if slot.Venue == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("- %s lúc %s: %s\n", slot.Title, slot.Time.Format(), slot.Venue.Name))
	}
	return sb.String()
}
