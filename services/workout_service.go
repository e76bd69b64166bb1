package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"backend/models"
)

// Exercise is one entry of a generated workout plan.
type Exercise struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Sets         int      `json:"sets"`
	Reps         string   `json:"reps"`
	RestTime     string   `json:"restTime"`
	Difficulty   string   `json:"difficulty"`
	MuscleGroups []string `json:"muscleGroups"`
	Tips         []string `json:"tips"`
	Equipment    string   `json:"equipment"`
}

func jsonOrNone(v json.RawMessage) string {
	if len(v) == 0 {
		return "None"
	}
	return string(v)
}

// BuildWorkoutPrompt summarizes the profile for the model and pins the output
// contract to a bare JSON array.
func BuildWorkoutPrompt(profile *models.Profile) string {
	var sb strings.Builder
	sb.WriteString("You are a professional fitness coach. Based on the user's profile below, generate a personalized workout plan with 6-8 exercises.\n\n")
	sb.WriteString("User Profile:\n")
	sb.WriteString(fmt.Sprintf("- Name: %s %s\n", profile.FirstName, profile.LastName))
	sb.WriteString(fmt.Sprintf("- Age: %d\n", profile.Age))
	sb.WriteString(fmt.Sprintf("- Gender: %s\n", profile.Gender))
	sb.WriteString(fmt.Sprintf("- Height: %.0fcm\n", profile.Height))
	sb.WriteString(fmt.Sprintf("- Weight: %.0fkg\n", profile.Weight))
	sb.WriteString(fmt.Sprintf("- Fitness Goal: %s\n", profile.Goal))
	sb.WriteString(fmt.Sprintf("- Fitness Level: %s\n", profile.Level))
	sb.WriteString(fmt.Sprintf("- Training Location: %s\n", profile.Place))
	sb.WriteString(fmt.Sprintf("- Available Equipment: %s\n", jsonOrNone(json.RawMessage(profile.Equipment))))
	sb.WriteString(fmt.Sprintf("- Training Days per Week: %d\n", profile.Days))
	sb.WriteString(fmt.Sprintf("- Session Duration: %d minutes\n", profile.SessionTime))
	sb.WriteString(fmt.Sprintf("- Injuries/Limitations: %s\n", jsonOrNone(json.RawMessage(profile.Injures))))
	able := "No"
	if profile.Able {
		able = "Yes"
	}
	sb.WriteString(fmt.Sprintf("- Able to train: %s\n", able))
	sb.WriteString(`
Generate a JSON array of exercises. Each exercise should have:
- name: Exercise name
- description: Brief description (1-2 sentences)
- sets: Number of sets
- reps: Reps or duration
- restTime: Rest time between sets
- difficulty: beginner/intermediate/advanced
- muscleGroups: Array of targeted muscle groups
- tips: Array of 2-3 important tips for proper form
- equipment: Required equipment (or "bodyweight")

Make sure exercises match the user's fitness level, available equipment, training location, and consider any injuries. Return ONLY a valid JSON array, no additional text.`)
	return sb.String()
}

// StripCodeFences removes a surrounding markdown code block, which the model
// adds despite being told not to.
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// ParseExercises decodes the model output into a plan.
func ParseExercises(raw string) ([]Exercise, error) {
	var exercises []Exercise
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &exercises); err != nil {
		return nil, fmt.Errorf("parse exercises: %w", err)
	}
	if len(exercises) == 0 {
		return nil, fmt.Errorf("empty exercise list")
	}
	return exercises, nil
}

// GenerateWorkoutPlan runs the full profile -> prompt -> plan pipeline.
func GenerateWorkoutPlan(g *GeminiService, profile *models.Profile) ([]Exercise, error) {
	text, err := g.GenerateContent(BuildWorkoutPrompt(profile))
	if err != nil {
		return nil, err
	}
	return ParseExercises(text)
}
