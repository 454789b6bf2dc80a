package report

import "html/template"

var layouts = map[Layout]*template.Template{
	LayoutGrid: template.Must(template.Must(basePage()).Parse(gridBodyHTML)),
	LayoutTabs: template.Must(template.Must(basePage()).Parse(tabsBodyHTML)),
}

func basePage() (*template.Template, error) {
	t, err := template.New("page").Parse(pageHTML)
	if err != nil {
		return nil, err
	}
	return t.Parse(chartCardsHTML)
}

const pageHTML = `<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <style>
    :root {
      --primary: #452829;
      --secondary: #57595B;
      --accent: #E8D1C5;
      --light: #F3E8DF;
      --text: #020202;
      --border: #E8D1C5;
    }
    body { background-color: var(--light); color: var(--text); }
    .navbar-brand { color: var(--light) !important; }
    .bg-primary-dark { background-color: var(--primary) !important; }
    .chart-card {
      background: #fff;
      border-radius: 12px;
      padding: 1.25rem;
      border: 1px solid var(--border);
      box-shadow: 0 1px 3px rgba(2, 2, 2, 0.08);
      height: 100%;
    }
    .charts-grid {
      display: grid;
      grid-template-columns: repeat(2, minmax(0, 1fr));
      gap: 1.5rem;
    }
    .charts-grid .wide { grid-column: 1 / -1; }
    @media (max-width: 900px) { .charts-grid { grid-template-columns: 1fr; } }
    .plot { font: 11px sans-serif; }
    .plot .plot-title { font-weight: bold; font-size: 13px; }
    .plot .axis path, .plot .axis line { fill: none; stroke: var(--secondary); }
    .plot .legend text { font-size: 10px; }
    .summary-card .value { font-size: 1.75rem; font-weight: 700; color: var(--primary); }
    .summary-card .label { color: var(--secondary); text-transform: uppercase; font-size: 0.75rem; }
    .sidebar .nav-link { color: var(--secondary); cursor: pointer; }
    .sidebar .nav-link.active { background-color: var(--primary); color: var(--light); }
    .tab-pane { display: none; }
    .tab-pane.active { display: block; }
    footer { color: var(--secondary); font-size: 0.8rem; }
  </style>
</head>
<body>
  <nav class="navbar bg-primary-dark mb-4">
    <div class="container-fluid">
      <span class="navbar-brand mb-0 h1">{{ .Title }}</span>
      {{ if .Source }}<span class="text-light small">{{ .Source }}</span>{{ end }}
    </div>
  </nav>
  {{ template "body" . }}
  <footer class="container-fluid my-4 text-center">
    Rapport {{ .ReportID }} &middot; généré le {{ .GeneratedAt }}
  </footer>
  <script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.2/dist/chart.umd.min.js"></script>
  <script>
    const charts = {{ .ChartsJSON }};
    const rendered = {};

    function renderChart(id) {
      if (rendered[id]) {
        return;
      }
      rendered[id] = true;
      const config = charts[id];
      const element = document.getElementById(id);
      if (!config || !element) {
        return;
      }
      if (id === "solverSuccessRateChart") {
        config.options.plugins.tooltip = {
          callbacks: {
            label: (ctx) => ctx.dataset.label + ": " + ctx.parsed.x.toFixed(1) + "%"
          }
        };
      }
      new Chart(element, config);
    }

    function renderWithin(root) {
      root.querySelectorAll("[data-chart]").forEach((el) => renderChart(el.id));
    }
  </script>
  {{ template "script" . }}
</body>
</html>
`

const chartCardsHTML = `
{{ define "performance" }}<div class="chart-card"><canvas id="solverPerformanceChart" data-chart></canvas></div>{{ end }}
{{ define "status" }}<div class="chart-card"><canvas id="statusDistributionChart" data-chart></canvas></div>{{ end }}
{{ define "success" }}<div class="chart-card"><canvas id="solverSuccessRateChart" data-chart></canvas></div>{{ end }}
{{ define "complexity" }}<div class="chart-card" id="complexityTimeChart">{{ .Scatter }}</div>{{ end }}
{{ define "radar" }}<div class="chart-card"><canvas id="familyRadarChart" data-chart></canvas></div>{{ end }}
{{ define "heatmap" }}<div class="chart-card" id="solverFamilyHeatmap">{{ .Heatmap }}</div>{{ end }}
{{ define "cards" }}
<div class="row g-3 mb-4">
  {{ range .Cards }}
  <div class="col">
    <div class="chart-card summary-card">
      <div class="label">{{ .Label }}</div>
      <div class="value">{{ .Value }}</div>
      {{ if .Hint }}<div class="small text-muted">{{ .Hint }}</div>{{ end }}
    </div>
  </div>
  {{ end }}
</div>
{{ end }}
`

const gridBodyHTML = `
{{ define "body" }}
<main class="container-fluid px-4">
  <div class="charts-grid">
    <div>{{ template "performance" . }}</div>
    <div>{{ template "status" . }}</div>
    <div class="wide">{{ template "success" . }}</div>
    <div class="wide">{{ template "complexity" . }}</div>
    <div>{{ template "radar" . }}</div>
    <div class="wide">{{ template "heatmap" . }}</div>
  </div>
</main>
{{ end }}
{{ define "script" }}
<script>
  document.addEventListener("DOMContentLoaded", () => renderWithin(document));
</script>
{{ end }}
`

const tabsBodyHTML = `
{{ define "body" }}
<div class="container-fluid px-4">
  <div class="row">
    <aside class="col-md-2 sidebar mb-3">
      <nav class="nav nav-pills flex-column">
        <a class="nav-link active" data-tab="overview">Vue d'ensemble</a>
        <a class="nav-link" data-tab="performance">Performance</a>
        <a class="nav-link" data-tab="success">Taux de résolution</a>
        <a class="nav-link" data-tab="complexity">Complexité</a>
        <a class="nav-link" data-tab="families">Familles</a>
      </nav>
    </aside>
    <main class="col-md-10">
      {{ template "cards" . }}
      <section class="tab-pane active" id="tab-overview">
        <div class="row g-4">
          <div class="col-lg-6">{{ template "status" . }}</div>
        </div>
      </section>
      <section class="tab-pane" id="tab-performance">
        <div class="row g-4">
          <div class="col-12">{{ template "performance" . }}</div>
        </div>
      </section>
      <section class="tab-pane" id="tab-success">
        {{ template "success" . }}
      </section>
      <section class="tab-pane" id="tab-complexity">
        {{ template "complexity" . }}
      </section>
      <section class="tab-pane" id="tab-families">
        <div class="row g-4">
          <div class="col-lg-5">{{ template "radar" . }}</div>
          <div class="col-lg-7">{{ template "heatmap" . }}</div>
        </div>
      </section>
    </main>
  </div>
</div>
{{ end }}
{{ define "script" }}
<script>
  function showTab(name) {
    document.querySelectorAll(".sidebar .nav-link").forEach((link) => {
      link.classList.toggle("active", link.dataset.tab === name);
    });
    document.querySelectorAll(".tab-pane").forEach((pane) => {
      pane.classList.toggle("active", pane.id === "tab-" + name);
    });
    const pane = document.getElementById("tab-" + name);
    if (pane) {
      renderWithin(pane);
    }
  }

  document.addEventListener("DOMContentLoaded", () => {
    document.querySelectorAll(".sidebar .nav-link").forEach((link) => {
      link.addEventListener("click", () => showTab(link.dataset.tab));
    });
    showTab("overview");
  });
</script>
{{ end }}
`
