package main

import (
	"context"
	"flag"
	"log"

	"github.com/likelion-hsu/recipememo/backend/config"
	"github.com/likelion-hsu/recipememo/backend/internal/database"
	"github.com/likelion-hsu/recipememo/backend/internal/repository"
	"github.com/likelion-hsu/recipememo/backend/internal/service"
	"github.com/likelion-hsu/recipememo/backend/internal/storage"
	"github.com/likelion-hsu/recipememo/backend/internal/types"
)

var sampleRecipes = []types.RecipeRequest{
	{
		Title:       "김치찌개",
		Category:    "한식",
		CookingTime: "30분",
		Difficulty:  "쉬움",
		Ingredients: []string{"김치 300g", "돼지고기 200g", "두부 1/2모", "대파 1대"},
		Content:     "잘 익은 김치를 쓰면 더 맛있다.",
		Steps:       []string{"돼지고기와 김치를 볶는다", "물을 붓고 끓인다", "두부와 대파를 넣고 5분 더 끓인다"},
	},
	{
		Title:       "비빔밥",
		Category:    "한식",
		CookingTime: "25분",
		Difficulty:  "보통",
		Ingredients: []string{"밥 1공기", "시금치", "콩나물", "고추장", "달걀 1개"},
		Content:     "나물은 미리 무쳐 둔다.",
		Steps:       []string{"나물을 데쳐 무친다", "달걀을 부친다", "밥 위에 올리고 고추장과 비빈다"},
	},
	{
		Title:       "규동",
		Category:    "일식",
		CookingTime: "20분",
		Difficulty:  "쉬움",
		Ingredients: []string{"소고기 200g", "양파 1/2개", "간장", "미림", "밥"},
		Content:     "달달한 소고기 덮밥.",
		Steps:       []string{"양파를 썬다", "양념에 양파와 소고기를 졸인다", "밥 위에 올린다"},
	},
	{
		Title:       "마파두부",
		Category:    "중식",
		CookingTime: "25분",
		Difficulty:  "보통",
		Ingredients: []string{"두부 1모", "다진 돼지고기 100g", "두반장", "전분물"},
		Content:     "산초를 조금 넣으면 풍미가 산다.",
		Steps:       []string{"고기를 볶는다", "두반장을 넣고 볶는다", "두부를 넣고 전분물로 농도를 맞춘다"},
	},
	{
		Title:       "알리오 올리오",
		Category:    "양식",
		CookingTime: "15분",
		Difficulty:  "쉬움",
		Ingredients: []string{"스파게티 100g", "마늘 5쪽", "올리브유", "페페론치노"},
		Content:     "면수로 농도를 맞춘다.",
		Steps:       []string{"면을 삶는다", "마늘을 올리브유에 볶는다", "면과 면수를 넣고 섞는다"},
	},
}

func main() {
	owner := flag.String("uid", "seed-user", "firebase uid that owns the seeded recipes")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// seeded recipes carry no images, the store is never written
	recipeService := service.NewRecipeService(repository.NewRecipeRepository(db), storage.NewLocalImageStore(cfg.UploadDir))

	ctx := context.Background()
	for i := range sampleRecipes {
		req := sampleRecipes[i]
		req.FirebaseUID = *owner

		recipe, err := recipeService.CreateRecipe(ctx, &req, nil)
		if err != nil {
			log.Fatalf("Failed to seed %q: %v", req.Title, err)
		}
		log.Printf("Seeded %s (%s) as %s", recipe.Title, req.Category, recipe.ID)
	}
	log.Printf("Seeded %d recipes", len(sampleRecipes))
}
