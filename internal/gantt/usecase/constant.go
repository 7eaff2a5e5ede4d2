package usecase

const (
	defaultMaxTokens = 4096

	promptRole = "You are an expert project manager creating a Gantt chart. Based on the provided reference documents and user instructions, generate a structured project timeline."

	noDocuments = "(No documents provided)"

	promptUnitRules = `RULES FOR CHOOSING THE UNIT (FOLLOW EXACTLY):
1. "unit" is mandatory and must be one of "week", "month", "quarter", "year".
2. "totalIntervals" is the number of units on the axis; task indices run from 1 to totalIntervals inclusive.
3. A stated range of years (e.g. "2020 to 2030") or a span of 6 or more years uses unit "year" with one interval per year, counting both ends of a range.
4. A span of 2 to 5 years uses unit "quarter" with 4 intervals per year.
5. An explicit count of months uses unit "month" with that many intervals; 24 months or more may use quarters instead.
6. Quarter or fiscal-year language without a longer span uses unit "quarter".
7. Spans under 6 months, week counts and sprint plans use unit "week".
8. Do not default to "week" when the text states a longer horizon.

EXAMPLES:
- "Project from 2020 to 2030" -> unit "year", totalIntervals 11
- "10-year transformation" -> unit "year", totalIntervals 10
- "3-year roadmap" -> unit "quarter", totalIntervals 12
- "18-month development" -> unit "month", totalIntervals 18
- "Q1 to Q4 rollout in 2025" -> unit "quarter", totalIntervals 4
- "8-week sprint" -> unit "week", totalIntervals 8`

	promptPlanningRules = `PLANNING RULES:
1. Derive phases and tasks from the documents and instructions.
2. Use realistic durations for the chosen unit; tasks may overlap within and across phases.
3. Give each phase 2-5 action-oriented tasks and respect logical sequencing.
4. Keep the chart readable, typically 8-50 intervals in total.`

	promptClosing = "Respond with ONLY one JSON object matching the schema above. Do not add prose or Markdown fences."
)
