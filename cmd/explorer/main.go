package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"pokexplorer/internal/config"
	"pokexplorer/internal/model"
	"pokexplorer/internal/pipeline"
	"pokexplorer/internal/remote"
	"pokexplorer/internal/store"
)

func main() {
	verbose := flag.Bool("v", false, "log every pipeline state transition")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	favorites, err := store.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize favorites store: %v", err)
	}
	defer favorites.Close()

	client := remote.NewClient(cfg.BaseURL, cfg.HTTPTimeout)

	var observer pipeline.Observer
	if *verbose {
		observer = func(snap pipeline.Snapshot) {
			log.Printf("[%s] category=%q items=%d index=%d err=%q",
				snap.State, snap.Category.Name, len(snap.Items), snap.Cursor.Index, snap.Err)
		}
	}
	session := pipeline.NewSession(client, client, cfg.PageSize, observer)

	categories := model.Categories()
	fmt.Println("pokexplorer - type 'help' for commands")
	session.SelectCategory(categories[0])
	printSnapshot(session.Snapshot())

	repl(session, favorites, categories)
}

func repl(session *pipeline.Session, favorites *store.Store, categories []model.Category) {
	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Print("> ")
			continue
		}

		switch fields[0] {
		case "help":
			fmt.Println("categories | select <name|id> | more | list | refresh | open <n> | favs | quit")

		case "categories":
			for _, cat := range categories {
				marker := " "
				if cat.ID == session.Snapshot().Category.ID {
					marker = "*"
				}
				fmt.Printf(" %s %2d %s\n", marker, cat.ID, cat.Name)
			}

		case "select":
			if len(fields) < 2 {
				fmt.Println("usage: select <name|id>")
				break
			}
			cat, ok := findCategory(categories, fields[1])
			if !ok {
				fmt.Printf("unknown category %q\n", fields[1])
				break
			}
			// Re-selecting the current category is ignored, same as tapping
			// the already-selected chip.
			if cat.ID == session.Snapshot().Category.ID {
				break
			}
			session.SelectCategory(cat)
			printSnapshot(session.Snapshot())

		case "more":
			session.LoadMore()
			printSnapshot(session.Snapshot())

		case "refresh":
			session.Refresh()
			printSnapshot(session.Snapshot())

		case "list":
			printSnapshot(session.Snapshot())

		case "open":
			if len(fields) < 2 {
				fmt.Println("usage: open <n>")
				break
			}
			n, err := strconv.Atoi(fields[1])
			snap := session.Snapshot()
			if err != nil || n < 1 || n > len(snap.Items) {
				fmt.Println("no such item")
				break
			}
			item := snap.Items[n-1]
			session.SelectItem(item)
			refreshRequired := detailScreen(ctx, scanner, favorites, item)
			session.ClearSelection()
			if refreshRequired {
				session.RefreshIfBelowThreshold()
				printSnapshot(session.Snapshot())
			}

		case "favs":
			refreshRequired := favoritesScreen(ctx, scanner, favorites)
			if refreshRequired {
				session.RefreshIfBelowThreshold()
				printSnapshot(session.Snapshot())
			}

		case "quit", "exit":
			return

		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
		fmt.Print("> ")
	}
}

// detailScreen runs the detail sub-loop and reports whether the favorites
// list changed while it was open.
func detailScreen(ctx context.Context, scanner *bufio.Scanner, favorites *store.Store, item model.Item) bool {
	detail, err := pipeline.NewDetailSession(ctx, favorites, item)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return false
	}

	printItem(item, detail.IsFavorite())
	fmt.Print("detail> ")
	for scanner.Scan() {
		switch strings.TrimSpace(scanner.Text()) {
		case "fav":
			fav, err := detail.ToggleFavorite(ctx)
			if err != nil {
				fmt.Printf("error: %v\n", err)
			} else if fav {
				fmt.Println("added to favorites")
			} else {
				fmt.Println("removed from favorites")
			}
		case "back":
			return detail.RefreshRequired()
		default:
			fmt.Println("fav | back")
		}
		fmt.Print("detail> ")
	}
	return detail.RefreshRequired()
}

// favoritesScreen runs the favorites sub-loop. The return value tells the
// caller to refresh the main list, which the list screen does whenever it
// holds less than one full page.
func favoritesScreen(ctx context.Context, scanner *bufio.Scanner, favorites *store.Store) bool {
	favs := pipeline.NewFavoritesSession(favorites)
	if err := favs.Load(ctx); err != nil {
		fmt.Printf("error: %v\n", err)
		return false
	}

	printFavorites(favs.Items())
	fmt.Print("favs> ")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Print("favs> ")
			continue
		}
		switch fields[0] {
		case "rm":
			if len(fields) < 2 {
				fmt.Println("usage: rm <id>")
				break
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("usage: rm <id>")
				break
			}
			if err := favs.Remove(ctx, id); err != nil {
				fmt.Printf("error: %v\n", err)
				break
			}
			printFavorites(favs.Items())
		case "list":
			printFavorites(favs.Items())
		case "back":
			return true
		default:
			fmt.Println("list | rm <id> | back")
		}
		fmt.Print("favs> ")
	}
	return true
}

func findCategory(categories []model.Category, arg string) (model.Category, bool) {
	for _, cat := range categories {
		if strings.EqualFold(cat.Name, arg) || strconv.Itoa(cat.ID) == arg {
			return cat, true
		}
	}
	return model.Category{}, false
}

func printSnapshot(snap pipeline.Snapshot) {
	if snap.State == pipeline.StateError {
		fmt.Printf("error: %s\n", snap.Err)
		return
	}
	fmt.Printf("%s [%d items]\n", snap.Category.Name, len(snap.Items))
	for n, item := range snap.Items {
		fmt.Printf(" %3d. #%d %s\n", n+1, item.ID, item.Name)
	}
}

func printItem(item model.Item, fav bool) {
	marker := ""
	if fav {
		marker = " ★"
	}
	fmt.Printf("#%d %s%s\n  weight: %d  height: %d\n  sprite: %s\n",
		item.ID, item.Name, marker, item.Weight, item.Height, item.Sprites.FrontDefault)
	for _, stat := range item.Stats {
		fmt.Printf("  %s: %d\n", stat.Stat.Name, stat.BaseValue)
	}
}

func printFavorites(items []model.Item) {
	if len(items) == 0 {
		fmt.Println("no favorites yet")
		return
	}
	for _, item := range items {
		fmt.Printf("  #%d %s\n", item.ID, item.Name)
	}
}
