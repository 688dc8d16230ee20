package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"networth/feature/item"

	"github.com/goccy/go-json"
)

// Dumps every slot of an encoded inventory. The blob is read from the first
// argument, or from stdin when no argument is given.
func main() {
	blob := ""
	if len(os.Args) > 1 {
		blob = os.Args[1]
	} else {
		sc := bufio.NewScanner(os.Stdin)
		sc.Buffer(make([]byte, 0, 1<<20), 64<<20)
		for sc.Scan() {
			blob += strings.TrimSpace(sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}

	slots, err := item.DecodeInventory(blob)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Decoded %d slots\n", len(slots))

	for i, slot := range slots {
		if slot == nil {
			fmt.Printf("\n[%d] empty\n", i)
			continue
		}
		fmt.Printf("\n[%d] %s x%d\n", i, slot.Name, slot.Count)

		if slot.Attributes != nil {
			if it, err := item.ProjectItem(slot.Attributes, slot.Count); err == nil {
				fmt.Println(it.String())
			}
		}

		data, err := json.MarshalIndent(slot.Attributes, "", "  ")
		if err != nil {
			log.Printf("slot %d: %v", i, err)
			continue
		}
		fmt.Println(string(data))
	}
}
