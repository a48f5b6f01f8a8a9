package disclaimer

import (
	"time"

	"fitpulse/models"
)

// Sections returns every legal disclaimer document.
func Sections() []models.LegalSection {
	now := time.Now().UTC().Format(time.RFC3339)

	return []models.LegalSection{
		{
			Type:    models.DisclaimerGeneral,
			Title:   "General Terms & Liability Notice",
			Summary: "Baseline terms that apply to every part of the FitPulse app.",
			Content: generateGeneralDisclaimer(),
			Version: "v1.0",
			Updated: now,
		},
		{
			Type:    models.DisclaimerMedical,
			Title:   "Medical Information Disclaimer",
			Summary: "FitPulse content is not medical advice.",
			Content: generateMedicalDisclaimer(),
			Version: "v1.0",
			Updated: now,
		},
		{
			Type:    models.DisclaimerDoctor,
			Title:   "Consult Your Doctor",
			Summary: "Talk to a physician before acting on health data shown here.",
			Content: generateDoctorDisclaimer(),
			Version: "v1.0",
			Updated: now,
		},
		{
			Type:    models.DisclaimerAudio,
			Title:   "Audio Session Notice",
			Summary: "Safety notice for guided audio workouts.",
			Content: generateAudioDisclaimer(),
			Version: "v1.0",
			Updated: now,
		},
		{
			Type:    models.DisclaimerCoach,
			Title:   "Coaching Disclaimer",
			Summary: "Coaches and the AI coach are not medical professionals.",
			Content: generateCoachDisclaimer(),
			Version: "v1.0",
			Updated: now,
		},
		{
			Type:    models.DisclaimerProductSelling,
			Title:   "Product & Supplement Notice",
			Summary: "Terms covering purchases made through the FitPulse shop.",
			Content: generateProductDisclaimer(),
			Version: "v1.0",
			Updated: now,
		},
	}
}

// SectionFor returns the legal document for one disclaimer type.
func SectionFor(dtype models.DisclaimerType) (models.LegalSection, bool) {
	for _, section := range Sections() {
		if section.Type == dtype {
			return section, true
		}
	}
	return models.LegalSection{}, false
}

func generateGeneralDisclaimer() string {
	return `Welcome to FitPulse. By using the app you acknowledge:

1. Exercise carries inherent risk. Stop immediately if you feel pain, dizziness or shortness of breath.
2. FitPulse provides fitness and wellness content for informational purposes only.
3. You are responsible for training within your own limits.
4. Results vary by individual and are not guaranteed.

Full terms are available on our website.`
}

func generateMedicalDisclaimer() string {
	return `Nothing in FitPulse constitutes medical advice, diagnosis or treatment.

- Content is produced by fitness professionals, not physicians.
- Never disregard professional medical advice because of something read in this app.
- If you think you may have a medical emergency, call your doctor or emergency services immediately.`
}

func generateDoctorDisclaimer() string {
	return `Before starting any new training or nutrition program, consult your doctor — especially if you:

- have a history of heart disease, high blood pressure or joint problems,
- are pregnant or recently gave birth,
- take medication that affects heart rate or blood pressure.

Your doctor can review the data you share through FitPulse, but FitPulse does not replace a medical consultation.`
}

func generateAudioDisclaimer() string {
	return `Guided audio sessions are designed to be used while moving.

- Stay aware of your surroundings; do not use audio coaching while driving.
- Keep the volume at a level where you can hear external hazards.
- Stop the session if instructions conflict with how your body feels.`
}

func generateCoachDisclaimer() string {
	return `FitPulse coaches (human and AI) provide fitness guidance only:

- Coaches are not licensed medical or mental-health professionals.
- AI coach replies are generated automatically and may be inaccurate.
- Share medical documents with your coach only if you are comfortable doing so; you control attachment visibility in your profile.`
}

func generateProductDisclaimer() string {
	return `Purchases in the FitPulse shop are subject to the following:

1. Payments are securely processed via Stripe.
2. Supplements are not intended to diagnose, treat, cure or prevent any disease.
3. Check ingredient lists for allergens before purchase.
4. Refunds follow the policy listed on each product page.`
}
