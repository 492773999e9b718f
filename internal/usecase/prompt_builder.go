package usecase

import (
	"fmt"
	"strings"

	"github.com/Liorohan10/Skin-Sage/internal/domain"
)

const responseFormatInstructions = `Please provide your response in the following JSON format ONLY, with no additional text or explanations outside the JSON:
{
  "skinConditionAnalysis": "Detailed analysis of the skin condition based on the provided information, including specific concerns and recommendations",
  "recommendedProducts": [
    {
      "name": "Product Name",
      "description": "Detailed product description",
      "price": "Price range",
      "ingredients": "Key ingredients with their benefits",
      "suitableFor": "Skin types this product is suitable for",
      "matchReasons": ["Specific reason this product matches the user's needs", "Another specific reason"]
    }
  ],
  "morningRoutine": "Step-by-step morning skincare routine with product types and order of application",
  "nightRoutine": "Step-by-step night skincare routine with product types and order of application",
  "skinCareAdvice": "Additional personalized advice for the user's specific skin concerns"
}`

const imageInstructions = "I'm also providing a facial image. Please analyze this image to identify visible skin conditions " +
	"such as dryness, oiliness, acne, hyperpigmentation, fine lines, or other concerns. Include these observations in your " +
	"analysis and tailor your product recommendations and skincare routine accordingly. Be specific about what you observe " +
	"in the image and how it influences your recommendations."

// BuildPrompt renders the dermatologist prompt sent to the AI service
func BuildPrompt(profile domain.UserProfile, budgetLabel string, withImage bool) string {
	var b strings.Builder

	b.WriteString("You are a professional dermatologist and skincare expert. ")
	b.WriteString("I need detailed and personalized skincare recommendations based on the following information:\n\n")

	fmt.Fprintf(&b, "Skin Type: %s\n", profile.SkinType)
	fmt.Fprintf(&b, "Skin Concerns: %s\n", joinOrNone(profile.Concerns))
	fmt.Fprintf(&b, "Preferred Ingredients: %s\n", joinOrNone(profile.PreferredIngredients))
	fmt.Fprintf(&b, "Ingredients to Avoid: %s\n", joinOrNone(profile.AvoidIngredients))
	if len(profile.SkinConditions) > 0 {
		fmt.Fprintf(&b, "Skin Conditions: %s\n", strings.Join(profile.SkinConditions, ", "))
	}
	fmt.Fprintf(&b, "Age Range: %s\n", profile.AgeRange)
	fmt.Fprintf(&b, "Budget Preference: %s\n\n", budgetLabel)

	b.WriteString(responseFormatInstructions)

	if withImage {
		b.WriteString("\n\n")
		b.WriteString(imageInstructions)
	}

	return b.String()
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}
