// Package content holds the static bilingual marketing content served by the
// public API: the blog posts shown on the site. Copy lives in both Portuguese
// and English; the caller picks the locale.
package content

import (
	"github.com/gosimple/slug"
)

type LocalizedText struct {
	PT string `json:"pt"`
	EN string `json:"en"`
}

// In returns the text for the given locale, defaulting to English.
func (t LocalizedText) In(locale string) string {
	if locale == "pt" {
		return t.PT
	}
	return t.EN
}

type BlogPost struct {
	ID       int           `json:"id"`
	Slug     string        `json:"slug"`
	Title    LocalizedText `json:"title"`
	Excerpt  LocalizedText `json:"excerpt"`
	Content  LocalizedText `json:"content"`
	Author   string        `json:"author"`
	Date     string        `json:"date"`
	ReadTime int           `json:"readTime"`
	Image    string        `json:"image"`
}

// LocalizedPost is the API view of a post in one language.
type LocalizedPost struct {
	ID       int    `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content,omitempty"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	ReadTime int    `json:"readTime"`
	Image    string `json:"image"`
}

// Localize renders the post in one language. Content is included only when
// withContent is set; the list view ships excerpts only.
func (p BlogPost) Localize(locale string, withContent bool) LocalizedPost {
	lp := LocalizedPost{
		ID:       p.ID,
		Slug:     p.Slug,
		Title:    p.Title.In(locale),
		Excerpt:  p.Excerpt.In(locale),
		Author:   p.Author,
		Date:     p.Date,
		ReadTime: p.ReadTime,
		Image:    p.Image,
	}
	if withContent {
		lp.Content = p.Content.In(locale)
	}
	return lp
}

var blogPosts = []BlogPost{
	{
		ID: 1,
		Title: LocalizedText{
			PT: "Como Melhorar a Tua Técnica de Corrida",
			EN: "How to Improve Your Running Technique",
		},
		Excerpt: LocalizedText{
			PT: "Descobre os princípios fundamentais para correr com mais eficiência e menos risco de lesão. A técnica correta é a base de uma corrida sustentável.",
			EN: "Discover the fundamental principles to run more efficiently and with less risk of injury. Proper technique is the foundation of sustainable running.",
		},
		Content: LocalizedText{
			PT: `A técnica de corrida é frequentemente negligenciada por corredores amadores, mas é um dos fatores mais importantes para melhorar performance e prevenir lesões.

## Postura: A Base de Tudo

A postura correta começa pela cabeça. Mantém o olhar direcionado para a frente, cerca de 10-15 metros à tua frente. O tronco deve estar ligeiramente inclinado para a frente, a partir dos tornozelos e não da cintura.

## Cadência: O Ritmo dos Passos

A cadência ideal para a maioria dos corredores situa-se entre 170-180 passos por minuto. Uma cadência mais alta geralmente significa passos mais curtos, o que reduz o impacto nas articulações.

## Contacto com o Solo

O ponto de contacto ideal é debaixo do centro de gravidade do corpo, não à frente. Quando aterramos muito à frente, criamos uma força de travagem que desperdiça energia.

Na OPO.RUN, trabalhamos individualmente com cada atleta para identificar áreas de melhoria e desenvolver um plano personalizado de correção técnica.`,
			EN: `Running technique is often neglected by amateur runners, yet it is one of the most important factors for improving performance and preventing injury.

## Posture: The Foundation

Good posture starts with the head. Keep your gaze forward, about 10-15 meters ahead. The torso should lean slightly forward, from the ankles rather than the waist.

## Cadence: The Rhythm of Your Steps

The ideal cadence for most runners sits between 170-180 steps per minute. A higher cadence usually means shorter steps, which reduces joint impact.

## Ground Contact

The ideal contact point is under the body's center of gravity, not in front of it. Landing too far forward creates a braking force that wastes energy.

At OPO.RUN we work individually with every athlete to identify areas for improvement and build a personalized technique plan.`,
		},
		Author:   "OPO.RUN",
		Date:     "2025-01-10",
		ReadTime: 6,
		Image:    "/images/blog/technique.jpg",
	},
	{
		ID: 2,
		Title: LocalizedText{
			PT: "Treino de Força para Corredores",
			EN: "Strength Training for Runners",
		},
		Excerpt: LocalizedText{
			PT: "O treino de força não é só para velocistas. Descobre porque é que duas sessões semanais podem transformar a tua corrida.",
			EN: "Strength training isn't just for sprinters. Find out why two weekly sessions can transform your running.",
		},
		Content: LocalizedText{
			PT: `Muitos corredores evitam o ginásio com medo de ganhar massa e ficar mais lentos. A realidade é o oposto: o treino de força é um dos melhores preditores de economia de corrida.

## Porquê Treinar Força

Tendões e músculos mais fortes absorvem melhor o impacto de cada passada, o que se traduz em menos lesões e mais quilómetros de treino consistente.

## Por Onde Começar

Agachamentos, lunges e elevações de gémeos cobrem a maior parte das necessidades de um corredor. Duas sessões de 40 minutos por semana são suficientes.`,
			EN: `Many runners avoid the gym fearing they'll bulk up and slow down. The reality is the opposite: strength training is one of the best predictors of running economy.

## Why Train Strength

Stronger tendons and muscles absorb the impact of every stride better, which translates into fewer injuries and more kilometers of consistent training.

## Where to Start

Squats, lunges and calf raises cover most of a runner's needs. Two 40-minute sessions per week are enough.`,
		},
		Author:   "OPO.RUN",
		Date:     "2025-01-24",
		ReadTime: 5,
		Image:    "/images/blog/strength.jpg",
	},
	{
		ID: 3,
		Title: LocalizedText{
			PT: "Preparar a Tua Primeira Prova de 10K",
			EN: "Preparing for Your First 10K Race",
		},
		Excerpt: LocalizedText{
			PT: "Dos treinos à estratégia de prova: um guia prático para chegares à linha de partida confiante.",
			EN: "From training to race strategy: a practical guide to reaching the start line with confidence.",
		},
		Content: LocalizedText{
			PT: `Correr os primeiros 10 quilómetros de seguida é um marco para qualquer corredor. Com 8 a 10 semanas de preparação consistente, é um objetivo ao alcance de quase toda a gente.

## O Plano

Três corridas por semana chegam: uma corrida longa e lenta, uma sessão de ritmo e uma corrida fácil de recuperação. O volume semanal deve crescer no máximo 10% por semana.

## No Dia da Prova

Não estreies nada no dia da prova — nem sapatilhas, nem pequeno-almoço, nem ritmo. Começa mais devagar do que te apetece; os últimos 3 quilómetros agradecem.`,
			EN: `Running your first 10 kilometers non-stop is a milestone for any runner. With 8 to 10 weeks of consistent preparation, it's within almost everyone's reach.

## The Plan

Three runs a week are enough: one long slow run, one tempo session and one easy recovery run. Weekly volume should grow at most 10% per week.

## On Race Day

Don't debut anything on race day — not shoes, not breakfast, not pace. Start slower than you feel like; the final 3 kilometers will thank you.`,
		},
		Author:   "OPO.RUN",
		Date:     "2025-02-07",
		ReadTime: 7,
		Image:    "/images/blog/first-10k.jpg",
	},
}

func init() {
	// Slugs derive from the Portuguese title, matching the site's canonical
	// locale.
	for i := range blogPosts {
		if blogPosts[i].Slug == "" {
			blogPosts[i].Slug = slug.Make(blogPosts[i].Title.PT)
		}
	}
}

// Posts returns all blog posts, newest last (publication order).
func Posts() []BlogPost {
	return blogPosts
}

// PostBySlug looks a post up by its slug.
func PostBySlug(s string) (*BlogPost, bool) {
	for i := range blogPosts {
		if blogPosts[i].Slug == s {
			return &blogPosts[i], true
		}
	}
	return nil, false
}
