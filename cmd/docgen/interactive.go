package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/config"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/observability"
	"github.com/Asatsukiii/2025-MSMIN5IN52-GenAI/internal/pipeline"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Generate documents from a menu of sample texts or manual input",
	Long:  `Interactive demo mode: pick one of the built-in French sample texts or type free text, and watch it become a PDF.`,
	RunE:  runInteractive,
}

var (
	interactiveOutputDir  string
	interactiveChromePath string
	interactiveNoSandbox  bool
)

func init() {
	interactiveCmd.Flags().StringVarP(&interactiveOutputDir, "output", "o", "out", "Output directory for generated documents")
	interactiveCmd.Flags().StringVar(&interactiveChromePath, "chrome-path", "", "Chrome/Chromium executable path")
	interactiveCmd.Flags().BoolVar(&interactiveNoSandbox, "no-sandbox", false, "Disable the Chrome sandbox (needed in some containers)")

	rootCmd.AddCommand(interactiveCmd)
}

type sampleText struct {
	label    string
	baseName string
	text     string
}

var sampleTexts = []sampleText{
	{
		label:    "Générer un CV simple",
		baseName: "cv-simple",
		text: `Je m'appelle Marie Dupont, développeuse web avec 5 ans d'expérience.
Email: marie.dupont@email.fr, téléphone: 06 12 34 56 78.
J'ai travaillé chez WebAgency de 2019 à 2022 comme développeuse front-end,
puis chez DataCorp depuis 2022 comme développeuse full-stack.
Diplômée d'un Master en informatique de l'Université de Lyon en 2019.
Compétences: JavaScript, React, Node.js, Python, SQL.`,
	},
	{
		label:    "Générer un CV complexe",
		baseName: "cv-complexe",
		text: `Jean-Pierre Martin, ingénieur logiciel senior, recherche un poste d'architecte technique.
Adresse: 12 rue de la République, 75011 Paris. Contact: jp.martin@mail.com / 07 98 76 54 32.
Parcours professionnel: ingénieur d'études chez Capgemini (2012-2016), lead developer
chez BlaBlaCar (2016-2020), architecte logiciel chez Doctolib depuis 2020 où il encadre
une équipe de huit développeurs et pilote la migration vers le cloud.
Formation: diplôme d'ingénieur de l'INSA Lyon (2012), certification AWS Solutions Architect (2021).
Compétences techniques: Java, Go, Kubernetes, Terraform, PostgreSQL, Kafka, architecture microservices.`,
	},
	{
		label:    "Générer une facture simple",
		baseName: "facture-simple",
		text: `Facture n° F-2026-042 du 15 janvier 2026.
Émetteur: Studio Graphique Lumière, 8 avenue des Arts, 69002 Lyon.
Client: Boulangerie Petit, 3 place du Marché, 69003 Lyon.
Prestation: création d'un logo, 450 euros HT. TVA 20%.
Total TTC: 540 euros. Paiement à 30 jours.`,
	},
	{
		label:    "Générer une facture détaillée",
		baseName: "facture-detaillee",
		text: `Facture numéro 2026-0117 émise le 10 février 2026, échéance le 12 mars 2026.
Société émettrice: Atelier Numérique SARL, 25 boulevard Voltaire, 75011 Paris, SIRET 812 345 678 00019.
Client: Mairie de Vincennes, service communication, 53 bis rue de Fontenay, 94300 Vincennes.
Détail des prestations:
- Refonte du site internet: 40 heures à 85 euros l'heure, soit 3400 euros
- Formation des agents: 2 journées à 600 euros, soit 1200 euros
- Maintenance annuelle: forfait de 900 euros
Total HT: 5500 euros. TVA 20%: 1100 euros. Total TTC: 6600 euros.
Conditions de paiement: virement sous 30 jours. Pénalités de retard: 3 fois le taux légal.`,
	},
	{
		label:    "Générer un rapport simple",
		baseName: "rapport-simple",
		text: `Rapport d'activité du premier trimestre 2026, rédigé par Sophie Bernard le 5 avril 2026.
Introduction: ce rapport présente les résultats de l'équipe produit sur le trimestre écoulé.
Résultats commerciaux: le chiffre d'affaires a progressé de 12% par rapport au trimestre
précédent, porté par le lancement de la nouvelle offre en janvier.
Difficultés rencontrées: le recrutement de deux développeurs a pris du retard et certains
chantiers techniques ont été reportés au deuxième trimestre.
Conclusion: les objectifs du trimestre sont globalement atteints, la priorité du prochain
trimestre reste le renforcement de l'équipe technique.`,
	},
}

func runInteractive(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Config{
		ChromePath: interactiveChromePath,
		NoSandbox:  interactiveNoSandbox,
	}
	logger := newLogger(false)

	analyzer, closeAnalyzer, err := newAnalyzer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeAnalyzer()

	renderer, closeRenderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}
	defer closeRenderer()

	runner := pipeline.NewRunner(analyzer, renderer, logger)
	printer := observability.NewPrinter(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		printMenu()
		fmt.Fprint(os.Stdout, "Votre choix: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		choice := strings.TrimSpace(scanner.Text())

		quitChoice := fmt.Sprintf("%d", len(sampleTexts)+2)
		manualChoice := fmt.Sprintf("%d", len(sampleTexts)+1)

		var text, baseName string
		switch {
		case choice == quitChoice || strings.EqualFold(choice, "q"):
			fmt.Fprintln(os.Stdout, "Au revoir !")
			return nil
		case choice == manualChoice:
			text = readManualText(scanner)
			if strings.TrimSpace(text) == "" {
				fmt.Fprintln(os.Stdout, "Aucun texte saisi.")
				continue
			}
		default:
			sample, ok := lookupSample(choice)
			if !ok {
				fmt.Fprintf(os.Stdout, "Choix invalide. Veuillez choisir entre 1 et %s.\n", quitChoice)
				continue
			}
			text = sample.text
			baseName = sample.baseName
		}

		fmt.Fprintln(os.Stdout, "Analyse en cours...")
		result, err := runner.Run(ctx, pipeline.RunOptions{
			RawText:   text,
			OutputDir: interactiveOutputDir,
			BaseName:  baseName,
			Verbose:   true,
			Printer:   printer,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Erreur: %v\n", err)
			continue
		}

		printer.PrintRecord(result.Record)
		fmt.Fprintf(os.Stdout, "Type détecté: %s (confiance: %.0f%%)\n", result.DocumentType, result.Confidence*100)
		fmt.Fprintf(os.Stdout, "Document généré: %s\n\n", result.PDFPath)
	}
}

func printMenu() {
	fmt.Fprintln(os.Stdout, strings.Repeat("=", 60))
	fmt.Fprintln(os.Stdout, "    GÉNÉRATEUR DE CONTENU STRUCTURÉ - MODE INTERACTIF")
	fmt.Fprintln(os.Stdout, strings.Repeat("=", 60))
	for i, sample := range sampleTexts {
		fmt.Fprintf(os.Stdout, "%d. %s\n", i+1, sample.label)
	}
	fmt.Fprintf(os.Stdout, "%d. Entrer du texte manuellement\n", len(sampleTexts)+1)
	fmt.Fprintf(os.Stdout, "%d. Quitter\n", len(sampleTexts)+2)
}

func lookupSample(choice string) (sampleText, bool) {
	for i, sample := range sampleTexts {
		if choice == fmt.Sprintf("%d", i+1) {
			return sample, true
		}
	}
	return sampleText{}, false
}

// readManualText collects lines until the first empty line.
func readManualText(scanner *bufio.Scanner) string {
	fmt.Fprintln(os.Stdout, "Entrez votre texte (terminez par une ligne vide):")
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
