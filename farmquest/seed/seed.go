// Package seed supplies the static collections the store is initialized with.
// Every accessor returns fresh copies so callers never share backing arrays.
package seed

import (
	"time"

	"github.com/farmquest-india/farmquest/farmquest/models"
)

func date(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("seed: bad date " + value)
	}
	return t
}

func datePtr(value string) *time.Time {
	t := date(value)
	return &t
}

// Districts lists districts offered during registration.
var Districts = []string{
	"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Ahmedabad", "Chennai", "Kolkata", "Surat",
	"Pune", "Jaipur", "Lucknow", "Kanpur", "Nagpur", "Indore", "Thane", "Bhopal",
	"Visakhapatnam", "Patna", "Vadodara", "Ghaziabad", "Ludhiana", "Agra", "Nashik",
	"Ernakulam", "Thiruvananthapuram", "Kollam", "Kozhikode", "Thrissur", "Palakkad",
	"Malappuram", "Kannur", "Kasaragod", "Wayanad", "Idukki", "Pathanamthitta",
	"Alappuzha", "Kottayam", "Thoothukudi", "Salem", "Coimbatore", "Madurai",
}

// Crops lists crops offered during registration.
var Crops = []string{
	"Rice", "Wheat", "Sugarcane", "Cotton", "Jute", "Tea", "Coffee", "Coconut",
	"Spices (Cardamom)", "Spices (Pepper)", "Spices (Turmeric)", "Rubber", "Banana",
	"Mango", "Orange", "Apple", "Grapes", "Potato", "Onion", "Tomato",
	"Groundnut", "Sunflower", "Mustard", "Sesame", "Castor", "Soybean",
	"Millets", "Barley", "Maize", "Pulses", "Cashew", "Areca Nut",
}

func Users() []models.User {
	return []models.User{
		{
			ID:                  "user_1",
			Name:                "Rajesh Kumar",
			Email:               "rajesh.kumar@email.com",
			Phone:               "+91 9876543210",
			Avatar:              "/avatars/rajesh.jpg",
			District:            "Ernakulam",
			Village:             "Kumbanad",
			FarmSize:            5.5,
			PrimaryCrops:        []string{"Rice", "Coconut", "Spices (Pepper)"},
			ExperienceLevel:     models.ExperienceIntermediate,
			Language:            models.LanguageEnglish,
			SustainabilityScore: 85,
			TotalPoints:         2450,
			Level:               models.LevelEcoWarrior,
			Rank:                1,
			JoinedDate:          date("2024-01-15T00:00:00Z"),
			Achievements:        []string{"first_quest", "water_saver", "organic_pioneer"},
			QuestsCompleted:     12,
			ActiveQuests:        []string{"quest_2", "quest_5"},
		},
		{
			ID:                  "user_2",
			Name:                "Priya Sharma",
			Email:               "priya.sharma@email.com",
			Phone:               "+91 9876543211",
			Avatar:              "/avatars/priya.jpg",
			District:            "Bangalore",
			Village:             "Doddaballapur",
			FarmSize:            3.2,
			PrimaryCrops:        []string{"Tomato", "Onion", "Millets"},
			ExperienceLevel:     models.ExperienceAdvanced,
			Language:            models.LanguageEnglish,
			SustainabilityScore: 92,
			TotalPoints:         3120,
			Level:               models.LevelChampion,
			Rank:                2,
			JoinedDate:          date("2023-11-20T00:00:00Z"),
			Achievements:        []string{"first_quest", "water_saver", "organic_pioneer", "soil_doctor"},
			QuestsCompleted:     18,
			ActiveQuests:        []string{"quest_7"},
			IsAdmin:             true,
		},
		{
			ID:                  "user_3",
			Name:                "Mohammed Hassan",
			Email:               "mohammed.hassan@email.com",
			Phone:               "+91 9876543212",
			Avatar:              "/avatars/mohammed.jpg",
			District:            "Hyderabad",
			Village:             "Shamirpet",
			FarmSize:            8.0,
			PrimaryCrops:        []string{"Cotton", "Groundnut", "Maize"},
			ExperienceLevel:     models.ExperienceIntermediate,
			Language:            models.LanguageEnglish,
			SustainabilityScore: 78,
			TotalPoints:         1890,
			Level:               models.LevelGreen,
			Rank:                3,
			JoinedDate:          date("2024-02-10T00:00:00Z"),
			Achievements:        []string{"first_quest", "carbon_saver"},
			QuestsCompleted:     8,
			ActiveQuests:        []string{"quest_1", "quest_4"},
		},
		{
			ID:                  "user_4",
			Name:                "Anita Devi",
			Email:               "anita.devi@email.com",
			Phone:               "+91 9876543213",
			District:            "Pune",
			Village:             "Baramati",
			FarmSize:            2.8,
			PrimaryCrops:        []string{"Grapes", "Sugarcane"},
			ExperienceLevel:     models.ExperienceBeginner,
			Language:            models.LanguageHindi,
			SustainabilityScore: 45,
			TotalPoints:         980,
			Level:               models.LevelSeedling,
			Rank:                15,
			JoinedDate:          date("2024-06-01T00:00:00Z"),
			Achievements:        []string{"first_quest"},
			QuestsCompleted:     3,
			ActiveQuests:        []string{"quest_3"},
		},
		{
			ID:                  "user_5",
			Name:                "Suresh Reddy",
			Email:               "suresh.reddy@email.com",
			Phone:               "+91 9876543214",
			District:            "Chennai",
			Village:             "Kancheepuram",
			FarmSize:            6.5,
			PrimaryCrops:        []string{"Rice", "Groundnut", "Banana"},
			ExperienceLevel:     models.ExperienceAdvanced,
			Language:            models.LanguageTamil,
			SustainabilityScore: 88,
			TotalPoints:         2780,
			Level:               models.LevelEcoWarrior,
			Rank:                4,
			JoinedDate:          date("2023-12-05T00:00:00Z"),
			Achievements:        []string{"first_quest", "water_saver", "biodiversity_booster"},
			QuestsCompleted:     15,
			ActiveQuests:        []string{"quest_6"},
		},
	}
}

func Quests() []models.Quest {
	return []models.Quest{
		{
			ID:            "quest_1",
			Title:         "Water Warrior: Drip Irrigation Setup",
			Description:   "Install a drip irrigation system to reduce water consumption by 30% while maintaining crop yield.",
			Category:      models.QuestCategoryWater,
			Difficulty:    models.QuestDifficultyMedium,
			Points:        250,
			EstimatedTime: "14 days",
			Icon:          "Droplets",
			Image:         "/quests/drip-irrigation.jpg",
			Steps: []models.QuestStep{
				{ID: "step_1_1", Title: "Plan Your Irrigation Layout", Description: "Measure your field and design the drip irrigation layout. Consider crop spacing and water source location."},
				{ID: "step_1_2", Title: "Purchase Materials", Description: "Buy drip irrigation pipes, emitters, filters, and pressure regulators based on your layout plan."},
				{ID: "step_1_3", Title: "Install Main Pipeline", Description: "Lay the main pipeline from water source to the field. Ensure proper slope for water flow.", VerificationRequired: true},
				{ID: "step_1_4", Title: "Install Drip Lines", Description: "Connect drip lines to the main pipeline. Place emitters at appropriate distances near plant roots.", VerificationRequired: true},
				{ID: "step_1_5", Title: "Test and Monitor", Description: "Run the system for a week and monitor water usage. Adjust flow rates if needed.", VerificationRequired: true},
			},
			Requirements: []string{
				"Farm area of at least 0.5 acres",
				"Access to reliable water source",
				"Basic tools for installation",
			},
			Tips: []string{
				"Start with a small area to test the system",
				"Check for leaks regularly during the first week",
				"Install a timer to automate irrigation",
				"Clean filters monthly to maintain efficiency",
			},
		},
		{
			ID:            "quest_2",
			Title:         "Organic Champion: Pesticide-Free Month",
			Description:   "Eliminate chemical pesticides for 30 days using only organic and biological pest control methods.",
			Category:      models.QuestCategoryOrganic,
			Difficulty:    models.QuestDifficultyHard,
			Points:        300,
			EstimatedTime: "30 days",
			Icon:          "Bug",
			Image:         "/quests/organic-farming.jpg",
			Steps: []models.QuestStep{
				{ID: "step_2_1", Title: "Identify Current Pest Issues", Description: "Survey your crops and identify the types of pests currently affecting your plants."},
				{ID: "step_2_2", Title: "Prepare Organic Solutions", Description: "Create neem oil spray, prepare beneficial insect habitats, and make organic repellents."},
				{ID: "step_2_3", Title: "Implement Biological Controls", Description: "Introduce beneficial insects like ladybugs and set up pheromone traps for pest monitoring.", VerificationRequired: true},
				{ID: "step_2_4", Title: "Apply Organic Treatments", Description: "Use neem oil, soap sprays, and other organic methods. Document their effectiveness."},
				{ID: "step_2_5", Title: "Monitor and Document Results", Description: "Track pest levels, crop health, and yield changes throughout the month.", VerificationRequired: true},
			},
			Requirements: []string{
				"Commitment to avoid all chemical pesticides",
				"Access to organic pest control materials",
				"Daily monitoring capability",
			},
			Tips: []string{
				"Keep detailed records of pest levels before starting",
				"Combine multiple organic methods for best results",
				"Be patient - organic methods may take longer to show results",
				"Connect with other organic farmers for advice",
			},
		},
		{
			ID:            "quest_3",
			Title:         "Soil Doctor: pH Balance Master",
			Description:   "Test your soil pH and adjust it to optimal levels for your crops using natural amendments.",
			Category:      models.QuestCategorySoil,
			Difficulty:    models.QuestDifficultyEasy,
			Points:        150,
			EstimatedTime: "10 days",
			Icon:          "TestTube",
			Image:         "/quests/soil-testing.jpg",
			Steps: []models.QuestStep{
				{ID: "step_3_1", Title: "Collect Soil Samples", Description: "Collect soil samples from different areas of your field at 6-inch depth."},
				{ID: "step_3_2", Title: "Test Soil pH", Description: "Use pH testing kit or digital meter to test soil pH levels across your samples.", VerificationRequired: true},
				{ID: "step_3_3", Title: "Research Optimal pH", Description: "Determine the ideal pH range for your specific crops and compare with test results."},
				{ID: "step_3_4", Title: "Apply Natural Amendments", Description: "Add lime for acidic soil or organic matter/sulfur for alkaline soil as needed.", VerificationRequired: true},
				{ID: "step_3_5", Title: "Retest After Treatment", Description: "Wait a week and retest soil pH to verify improvements.", VerificationRequired: true},
			},
			Requirements: []string{
				"Soil pH testing kit or access to testing facility",
				"Natural soil amendments (lime, compost, sulfur)",
			},
			Tips: []string{
				"Test soil when it's not too wet or too dry",
				"Take samples from multiple locations for accuracy",
				"Retest soil every 6 months to monitor changes",
				"Different crops may need different pH levels",
			},
		},
		{
			ID:            "quest_4",
			Title:         "Compost Creator: Waste to Gold",
			Description:   "Create 100kg of high-quality organic compost from farm waste and kitchen scraps.",
			Category:      models.QuestCategoryWaste,
			Difficulty:    models.QuestDifficultyMedium,
			Points:        200,
			EstimatedTime: "21 days",
			Icon:          "Recycle",
			Image:         "/quests/composting.jpg",
			Steps: []models.QuestStep{
				{ID: "step_4_1", Title: "Set Up Compost Area", Description: "Choose a shaded area and set up compost bins or designate a composting space."},
				{ID: "step_4_2", Title: "Collect Organic Materials", Description: "Gather green materials (kitchen scraps, fresh grass) and brown materials (dry leaves, straw)."},
				{ID: "step_4_3", Title: "Build Compost Pile", Description: "Layer green and brown materials in 3:1 ratio. Add water to maintain moisture.", VerificationRequired: true},
				{ID: "step_4_4", Title: "Maintain and Turn", Description: "Turn the compost pile every 3-4 days and monitor temperature. Add water if needed."},
				{ID: "step_4_5", Title: "Harvest Finished Compost", Description: "After 3 weeks, harvest the dark, crumbly compost and weigh it.", VerificationRequired: true},
			},
			Requirements: []string{
				"Space for composting (3x3 feet minimum)",
				"Access to organic waste materials",
				"Tools for turning compost",
			},
			Tips: []string{
				"Maintain compost temperature between 130-160F",
				"Keep compost as moist as a wrung-out sponge",
				"Chop materials into small pieces for faster decomposition",
				"Avoid meat, dairy, and oily foods in compost",
			},
		},
		{
			ID:            "quest_5",
			Title:         "Biodiversity Booster: Native Species Garden",
			Description:   "Plant 10 different native plant species around your farm to promote biodiversity.",
			Category:      models.QuestCategoryBiodiversity,
			Difficulty:    models.QuestDifficultyMedium,
			Points:        220,
			EstimatedTime: "15 days",
			Icon:          "Flower",
			Image:         "/quests/native-plants.jpg",
			Steps: []models.QuestStep{
				{ID: "step_5_1", Title: "Research Native Species", Description: "Identify 10 native plant species suitable for your region and climate."},
				{ID: "step_5_2", Title: "Plan Garden Layout", Description: "Design where to plant each species considering their space and light requirements."},
				{ID: "step_5_3", Title: "Prepare Planting Areas", Description: "Clear and prepare soil in designated areas. Add compost if needed."},
				{ID: "step_5_4", Title: "Plant Native Species", Description: "Plant all 10 native species according to your layout plan.", VerificationRequired: true},
				{ID: "step_5_5", Title: "Monitor and Maintain", Description: "Water regularly and monitor plant establishment for 2 weeks."},
			},
			Requirements: []string{
				"Space for planting around farm boundaries",
				"Native plant seeds or seedlings",
				"Basic gardening tools",
			},
			Tips: []string{
				"Choose plants that flower at different times for year-round benefits",
				"Include plants that attract beneficial insects",
				"Native plants typically require less water and maintenance",
				"Create corridors connecting different planted areas",
			},
		},
		{
			ID:            "quest_6",
			Title:         "Carbon Saver: Fuel Reduction Challenge",
			Description:   "Reduce machinery fuel consumption by 20% through efficient farming practices.",
			Category:      models.QuestCategoryCarbon,
			Difficulty:    models.QuestDifficultyHard,
			Points:        280,
			EstimatedTime: "30 days",
			Icon:          "Fuel",
			Image:         "/quests/fuel-efficiency.jpg",
			Steps: []models.QuestStep{
				{ID: "step_6_1", Title: "Baseline Fuel Tracking", Description: "Record current fuel consumption for all farm machinery for one week."},
				{ID: "step_6_2", Title: "Optimize Field Operations", Description: "Plan combined operations and efficient field patterns to reduce trips."},
				{ID: "step_6_3", Title: "Maintain Equipment", Description: "Service all machinery - change oils, clean air filters, check tire pressure.", VerificationRequired: true},
				{ID: "step_6_4", Title: "Implement Efficiency Measures", Description: "Use proper gear settings, maintain consistent speeds, avoid excessive idling."},
				{ID: "step_6_5", Title: "Track and Verify Savings", Description: "Monitor fuel consumption for 3 weeks and calculate percentage reduction.", VerificationRequired: true},
			},
			Requirements: []string{
				"Farm machinery (tractor, cultivator, etc.)",
				"Fuel consumption tracking system",
				"Basic maintenance tools",
			},
			Tips: []string{
				"Keep detailed fuel logs for accurate comparison",
				"Combine multiple operations in single trips",
				"Avoid working in muddy conditions when possible",
				"Consider precision agriculture techniques",
			},
		},
		{
			ID:            "quest_7",
			Title:         "Crop Rotation Master: 3-Season Plan",
			Description:   "Implement a sustainable 3-crop rotation system to improve soil health and reduce pests.",
			Category:      models.QuestCategoryCropRotation,
			Difficulty:    models.QuestDifficultyHard,
			Points:        350,
			EstimatedTime: "90 days",
			Icon:          "RotateCcw",
			Image:         "/quests/crop-rotation.jpg",
			Steps: []models.QuestStep{
				{ID: "step_7_1", Title: "Design Rotation Plan", Description: "Plan a 3-season rotation with legumes, grains, and commercial crops."},
				{ID: "step_7_2", Title: "Prepare First Plot", Description: "Prepare soil and plant the first crop in your rotation sequence.", VerificationRequired: true},
				{ID: "step_7_3", Title: "Monitor Soil Health", Description: "Test soil nutrients and health indicators after each crop cycle.", VerificationRequired: true},
				{ID: "step_7_4", Title: "Transition to Second Crop", Description: "Harvest first crop and immediately plant the second crop in rotation.", VerificationRequired: true},
				{ID: "step_7_5", Title: "Complete Full Rotation", Description: "Complete all three crops in the rotation cycle and document results.", VerificationRequired: true},
			},
			Requirements: []string{
				"At least 1 acre of farmland",
				"Seeds for 3 different crop types",
				"Soil testing capability",
			},
			Tips: []string{
				"Include nitrogen-fixing legumes in your rotation",
				"Choose crops with different root depths",
				"Consider market demand for each crop",
				"Keep detailed records of yields and soil changes",
			},
		},
	}
}

func Achievements() []models.Achievement {
	return []models.Achievement{
		{
			ID:           "first_quest",
			Title:        "First Steps",
			Description:  "Complete your first sustainability quest",
			Icon:         "Award",
			Category:     "Milestone",
			Requirements: "Complete any quest",
			Rarity:       models.RarityCommon,
			IsUnlocked:   true,
			UnlockedDate: datePtr("2024-01-20T00:00:00Z"),
		},
		{
			ID:           "water_saver",
			Title:        "Water Guardian",
			Description:  "Save 1000L of water through efficient irrigation",
			Icon:         "Droplets",
			Category:     "Water Conservation",
			Requirements: "Complete 3 water conservation quests",
			Rarity:       models.RarityRare,
			IsUnlocked:   true,
			UnlockedDate: datePtr("2024-02-15T00:00:00Z"),
		},
		{
			ID:           "organic_pioneer",
			Title:        "Organic Pioneer",
			Description:  "Go chemical-free for 30 consecutive days",
			Icon:         "Leaf",
			Category:     "Organic Farming",
			Requirements: "Complete organic farming quest without using chemicals",
			Rarity:       models.RarityEpic,
		},
		{
			ID:           "soil_doctor",
			Title:        "Soil Doctor",
			Description:  "Master soil health management",
			Icon:         "TestTube",
			Category:     "Soil Health",
			Requirements: "Complete 5 soil health related quests",
			Rarity:       models.RarityRare,
		},
		{
			ID:           "carbon_saver",
			Title:        "Carbon Hero",
			Description:  "Reduce farm carbon footprint by 25%",
			Icon:         "TreePine",
			Category:     "Carbon Reduction",
			Requirements: "Complete carbon reduction quest successfully",
			Rarity:       models.RarityEpic,
		},
		{
			ID:           "biodiversity_booster",
			Title:        "Biodiversity Champion",
			Description:  "Create habitats for 20+ species",
			Icon:         "Flower2",
			Category:     "Biodiversity",
			Requirements: "Complete 3 biodiversity enhancement quests",
			Rarity:       models.RarityLegendary,
		},
		{
			ID:           "community_leader",
			Title:        "Community Leader",
			Description:  "Help 10 farmers start their sustainability journey",
			Icon:         "Users",
			Category:     "Community",
			Requirements: "Refer 10 farmers who complete their first quest",
			Rarity:       models.RarityLegendary,
		},
		{
			ID:           "quest_master",
			Title:        "Quest Master",
			Description:  "Complete 25 sustainability quests",
			Icon:         "Target",
			Category:     "Milestone",
			Requirements: "Complete 25 quests across all categories",
			Rarity:       models.RarityEpic,
		},
	}
}

func Articles() []models.Article {
	return []models.Article{
		{
			ID:      "article_1",
			Title:   "Sustainable Water Management in Indian Agriculture",
			Excerpt: "Learn effective techniques to conserve water while maintaining crop productivity in Indian farming conditions.",
			Content: "Water scarcity is becoming a critical challenge for Indian farmers. With changing rainfall patterns " +
				"and increasing temperatures, it's essential to adopt sustainable water management practices.\n\n" +
				"Drip irrigation can reduce water usage by 30-50% compared to traditional flood irrigation, delivering " +
				"water directly to plant roots and minimizing evaporation and runoff. Rainwater harvesting during monsoon " +
				"seasons provides water during dry periods, and organic mulch around plants helps retain soil moisture.\n\n" +
				"Regular monitoring of soil moisture levels helps optimize irrigation timing and quantity. Various " +
				"government schemes provide subsidies for water conservation equipment; contact your local agriculture " +
				"office for available programs.",
			Category:      "Water Conservation",
			Author:        "Dr. Suresh Patel",
			PublishedDate: date("2024-08-15T00:00:00Z"),
			ReadTime:      8,
			Difficulty:    models.ExperienceIntermediate,
			Image:         "/articles/water-management.jpg",
			Tags:          []string{"water conservation", "irrigation", "sustainability"},
			Likes:         234,
		},
		{
			ID:      "article_2",
			Title:   "Organic Pest Control: Natural Solutions for Healthy Crops",
			Excerpt: "Discover effective organic methods to control pests without harmful chemicals, protecting both crops and environment.",
			Content: "Chemical pesticides have long-term negative effects on soil health, beneficial insects, and human " +
				"health. Organic pest control offers sustainable alternatives that work with nature rather than against it.\n\n" +
				"Integrated pest management combines prevention (crop rotation, sanitation, resistant varieties), " +
				"biological control (ladybugs for aphids, parasitic wasps for caterpillars, neem-based products) and " +
				"physical controls (row covers, sticky traps, companion planting).\n\n" +
				"A simple neem oil spray - two tablespoons of neem oil, one tablespoon of mild liquid soap and a gallon " +
				"of water, applied in the evening - handles most soft-bodied pests. Regular field scouting catches " +
				"problems before they become severe.",
			Category:      "Organic Farming",
			Author:        "Dr. Priya Krishnan",
			PublishedDate: date("2024-08-10T00:00:00Z"),
			ReadTime:      12,
			Difficulty:    models.ExperienceIntermediate,
			Image:         "/articles/organic-pest-control.jpg",
			Tags:          []string{"organic farming", "pest control", "beneficial insects"},
			Likes:         189,
		},
		{
			ID:      "article_3",
			Title:   "Soil Health: The Foundation of Sustainable Farming",
			Excerpt: "Understanding and improving soil health is crucial for long-term agricultural sustainability and productivity.",
			Content: "Healthy soil is the foundation of productive agriculture. It supports plant growth, retains water " +
				"and nutrients, and hosts beneficial microorganisms essential for crop health.\n\n" +
				"Key indicators include soil structure and porosity, water infiltration, pH in the optimal range for " +
				"your crops, organic matter content between 3-5%, and biological activity such as earthworm presence.\n\n" +
				"Improve soil health by adding compost regularly, minimizing tillage, keeping soil covered with mulch or " +
				"cover crops, and rotating crops to break pest cycles and balance nutrient demands.",
			Category:      "Soil Health",
			Author:        "Dr. Anil Verma",
			PublishedDate: date("2024-08-05T00:00:00Z"),
			ReadTime:      10,
			Difficulty:    models.ExperienceBeginner,
			Image:         "/articles/soil-health.jpg",
			Tags:          []string{"soil health", "composting", "sustainability"},
			Likes:         156,
		},
	}
}
