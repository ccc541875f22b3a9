package report

// Prompt templates for the two report types. Both are Dutch-language;
// the generated reports are delivered to Dutch recruitment consultants.

const weeklyPrompt = `Schrijf een professionele Nederlandse recruitment markt analyse voor dit bedrijf.

STRUCTUUR:
1. Executive Summary (2-3 zinnen)
2. Bedrijfsanalyse (positie in de markt)
3. Functie-analyse (specifieke rol details)
4. Marktcontext (salary benchmarks, groei trends)
5. Recruitment strategie aanbevelingen
6. Actie items

Schrijf in professionele maar toegankelijke Nederlandse taal.
Gebruik concrete cijfers en data waar beschikbaar.
Houd het beknopt maar informatief (max 800 woorden).`

const monthlyPrompt = `Schrijf een uitgebreide Nederlandse sector analyse rapport.

STRUCTUUR:
1. Sector Overview
2. Markt Trends & Ontwikkelingen
3. Salary Benchmarks
4. Skills Gap Analyse
5. Growth Opportunities
6. Strategic Recommendations
7. Forecast & Outlook

Schrijf een diepgaand rapport van 1500-2000 woorden.
Gebruik alle beschikbare marktdata.
Focus op actionable insights voor recruitment professionals.`
