package main

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type NamedApiResource struct {
	Name string
	Url  string
}

type pokemonListResponse struct {
	Count    int
	Next     *string // Pointers because they can be nil
	Previous *string
	Results  []NamedApiResource
}

type statEntry struct {
	BaseStat int `json:"base_stat"`
	Stat     NamedApiResource
}

type typeEntry struct {
	Slot int
	Type NamedApiResource
}

type pokemonPre struct {
	Name    string
	Species NamedApiResource
	Stats   []statEntry
	Types   []typeEntry
}

func followNamedResource[T any](n NamedApiResource) (T, error) {
	var followed T

	response, err := http.Get(n.Url)
	if err != nil {
		return followed, err
	}

	bytes, err := io.ReadAll(response.Body)
	if err != nil {
		return followed, err
	}

	if err := json.Unmarshal(bytes, &followed); err != nil {
		return followed, err
	}

	return followed, nil
}

// Fetches every pokemon form from pokeapi and writes the base stat table
// that vgcdata.LoadSpecies expects
func speciesMain(speciesFileName string) {
	pokemonNR := make([]NamedApiResource, 0)

	url := "https://pokeapi.co/api/v2/pokemon?offset=0&limit=2000"
	for {
		response, err := http.Get(url)
		if err != nil {
			panic(err)
		}

		responseBytes, err := io.ReadAll(response.Body)
		if err != nil {
			panic(err)
		}

		tempResponse := new(pokemonListResponse)

		if err := json.Unmarshal(responseBytes, tempResponse); err != nil {
			panic(err)
		}

		pokemonNR = append(pokemonNR, tempResponse.Results...)

		if tempResponse.Next == nil {
			break
		} else {
			url = *tempResponse.Next
		}
	}

	log.Printf("Got %d pokemon\n", len(pokemonNR))

	titleCaser := cases.Title(language.English)
	rows := make([][]string, 0, len(pokemonNR))

	for _, nrPokemon := range pokemonNR {
		// Totem and gmax forms never show up in VGC
		if strings.Contains(nrPokemon.Name, "-totem") || strings.Contains(nrPokemon.Name, "-gmax") {
			continue
		}

		log.Printf("Querying Pokemon: %s @ %s\n", nrPokemon.Name, nrPokemon.Url)

		pokemon, err := followNamedResource[pokemonPre](nrPokemon)
		if err != nil {
			panic(err)
		}

		// The form id is not the national dex number, the species resource has it
		species, err := followNamedResource[struct {
			Id int
		}](pokemon.Species)
		if err != nil {
			panic(err)
		}

		stats := lo.Associate(pokemon.Stats, func(entry statEntry) (string, int) {
			return entry.Stat.Name, entry.BaseStat
		})

		type1 := ""
		type2 := ""
		for _, entry := range pokemon.Types {
			switch entry.Slot {
			case 1:
				type1 = titleCaser.String(entry.Type.Name)
			case 2:
				type2 = titleCaser.String(entry.Type.Name)
			}
		}

		rows = append(rows, []string{
			strconv.Itoa(species.Id),
			titleCaser.String(strings.ReplaceAll(pokemon.Name, "-", " ")),
			type1,
			type2,
			strconv.Itoa(stats["hp"]),
			strconv.Itoa(stats["attack"]),
			strconv.Itoa(stats["defense"]),
			strconv.Itoa(stats["special-attack"]),
			strconv.Itoa(stats["special-defense"]),
			strconv.Itoa(stats["speed"]),
		})
	}

	if err := os.MkdirAll(filepath.Dir(speciesFileName), 0755); err != nil {
		panic(err)
	}

	os.Remove(speciesFileName)

	f, err := os.Create(speciesFileName)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"PokedexNumber", "Name", "Type1", "Type2", "HP", "Attack", "Defense", "SpecialAttack", "SpecialDefense", "Speed"}
	if err := writer.Write(header); err != nil {
		panic(err)
	}

	if err := writer.WriteAll(rows); err != nil {
		panic(err)
	}

	log.Printf("Wrote %d species to %s\n", len(rows), speciesFileName)
}
