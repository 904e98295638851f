package api

import (
	"fmt"
	"html/template"
	"math"
	"strings"
	"time"

	"github.com/terraincognita07/wellnest/internal/health"
)

func templateFuncMap(location *time.Location) template.FuncMap {
	return template.FuncMap{
		"formatTime": func(value time.Time) string {
			if value.IsZero() {
				return ""
			}
			return value.In(location).Format("02 Jan 2006 15:04")
		},
		"formatOptional": formatTemplateOptionalInt,
		"formatFloat":    formatTemplateOptionalFloat,
		"percent": func(value float64) string {
			return fmt.Sprintf("%.0f%%", value*100)
		},
		"levelClass":    templateLevelClass,
		"severityClass": templateSeverityClass,
		"joinMessages": func(messages []string) string {
			return strings.Join(messages, " ")
		},
		"isActivePath": isActiveTemplatePath,
		"dict":         templateDict,
	}
}

func formatTemplateOptionalInt(value *int) string {
	if value == nil {
		return "--"
	}
	return fmt.Sprintf("%d", *value)
}

func formatTemplateOptionalFloat(value *float64) string {
	if value == nil {
		return "--"
	}
	rounded := math.Round(*value*10) / 10
	if math.Abs(rounded-math.Round(rounded)) < 1e-9 {
		return fmt.Sprintf("%.0f", rounded)
	}
	return fmt.Sprintf("%.1f", rounded)
}

func isActiveTemplatePath(current string, route string) bool {
	if route == "/" {
		return current == "/"
	}
	return current == route || strings.HasPrefix(current, route+"/")
}

func templateLevelClass(level health.Level) string {
	switch level {
	case health.LevelHigh:
		return "level-high"
	case health.LevelModerate:
		return "level-moderate"
	default:
		return "level-low"
	}
}

func templateSeverityClass(severity string) string {
	if severity == string(health.SeverityCritical) {
		return "severity-critical"
	}
	return "severity-warning"
}

func templateDict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("dict requires key-value pairs")
	}
	result := make(map[string]any, len(values)/2)
	for index := 0; index < len(values); index += 2 {
		key, ok := values[index].(string)
		if !ok {
			return nil, fmt.Errorf("dict key at index %d is not a string", index)
		}
		result[key] = values[index+1]
	}
	return result, nil
}
